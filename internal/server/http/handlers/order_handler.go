package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vpetrenko/shopadmin/internal/domain/errors"
	"github.com/vpetrenko/shopadmin/internal/domain/model"
	"github.com/vpetrenko/shopadmin/internal/server/http/dto"
	"github.com/vpetrenko/shopadmin/internal/usecase"
)

const eventListLimit = 50

// OrderHandler manages order status endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// UpdateStatus handles POST /api/admin/orders/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	adminID := CurrentAdminID(c)

	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "order_id and status are required"})
		return
	}

	result, err := h.facade.UpdateOrderStatus(c.Request.Context(), adminID, req.OrderID, model.OrderStatus(req.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if !result.Decision.Allowed {
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:           result.Decision.Message,
			Code:            result.Decision.Code,
			PaymentRequired: result.Decision.Code == usecase.CodePaymentRequired,
		})
		return
	}

	c.JSON(http.StatusOK, dto.OrderStatusResponse{
		Success: true,
		Order:   toOrderResponse(result.Order, result.Payment),
	})
}

// Events handles GET /api/admin/orders/:id/events.
func (h *OrderHandler) Events(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	events, err := h.facade.OrderEvents(c.Request.Context(), orderID, eventListLimit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := dto.EventsResponse{Success: true, Events: make([]dto.EventResponse, 0, len(events))}
	for _, e := range events {
		response.Events = append(response.Events, dto.EventResponse{
			ID:        e.ID,
			Event:     e.Event,
			OrderID:   e.OrderID,
			AdminID:   e.AdminID,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

func (h *OrderHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidOrderID), errors.Is(err, domainErrors.ErrInvalidOrderStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

func toOrderResponse(order *model.Order, payment *model.Payment) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:            order.ID,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		PaymentMethod: string(order.PaymentMethod),
		TotalPrice:    order.TotalPrice,
		UpdatedAt:     order.UpdatedAt,
	}
	if payment != nil {
		resp.PaymentStatus = string(payment.Status)
		resp.TransactionID = payment.TransactionID
	}
	return resp
}
