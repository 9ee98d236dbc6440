package dto

import "time"

// PaymentStatusRequest carries a payment record update.
type PaymentStatusRequest struct {
	OrderID       int64  `json:"order_id" binding:"required"`
	PaymentStatus string `json:"payment_status" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

// PaymentSummaryResponse aggregates payment info for an order.
type PaymentSummaryResponse struct {
	OrderID       int64      `json:"order_id"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method"`
	TransactionID string     `json:"transaction_id,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	Amount        float64    `json:"amount"`
}

// PaymentStatusResponse wraps a successful payment update.
type PaymentStatusResponse struct {
	Success        bool                   `json:"success"`
	Message        string                 `json:"message"`
	PaymentSummary PaymentSummaryResponse `json:"payment_summary"`
}
