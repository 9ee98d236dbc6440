package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vpetrenko/shopadmin/internal/domain/errors"
	"github.com/vpetrenko/shopadmin/internal/domain/model"
	"github.com/vpetrenko/shopadmin/internal/server/http/dto"
)

// PaymentHandler manages payment record endpoints.
type PaymentHandler struct {
	facade OrderFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade OrderFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// UpdateStatus handles POST /api/admin/orders/payment.
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	adminID := CurrentAdminID(c)

	var req dto.PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "order_id and payment_status are required"})
		return
	}

	summary, err := h.facade.UpdatePaymentStatus(c.Request.Context(), adminID, req.OrderID, model.PaymentStatus(req.PaymentStatus), req.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrderID), errors.Is(err, domainErrors.ErrInvalidPaymentStatus):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PaymentStatusResponse{
		Success:        true,
		Message:        "payment status updated",
		PaymentSummary: toPaymentSummaryResponse(summary),
	})
}

func toPaymentSummaryResponse(summary *model.PaymentSummary) dto.PaymentSummaryResponse {
	return dto.PaymentSummaryResponse{
		OrderID:       summary.OrderID,
		Status:        string(summary.Status),
		PaymentMethod: string(summary.PaymentMethod),
		TransactionID: summary.TransactionID,
		PaymentDate:   summary.PaymentDate,
		Amount:        summary.Amount,
	}
}
