package dto

import "time"

// OrderStatusRequest carries an order status transition.
type OrderStatusRequest struct {
	OrderID int64  `json:"order_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// OrderResponse mirrors the order row joined with its payment.
type OrderResponse struct {
	ID            int64     `json:"id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	TotalPrice    float64   `json:"total_price"`
	TransactionID string    `json:"transaction_id,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OrderStatusResponse wraps a successful status update.
type OrderStatusResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

// EventResponse describes one audit record.
type EventResponse struct {
	ID        int64          `json:"id"`
	Event     string         `json:"event"`
	OrderID   int64          `json:"order_id"`
	AdminID   int64          `json:"admin_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// EventsResponse lists audit records for an order.
type EventsResponse struct {
	Success bool            `json:"success"`
	Events  []EventResponse `json:"events"`
}
