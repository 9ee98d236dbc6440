package model

import "time"

// PaymentStatus describes payment lifecycle independent of order status.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusCanceled PaymentStatus = "canceled"
)

// ValidPaymentStatus reports whether s belongs to the fixed payment enum.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed,
		PaymentStatusRefunded, PaymentStatusCanceled:
		return true
	}
	return false
}

// Payment is the single payment record owned by an order.
type Payment struct {
	ID            int64
	OrderID       int64
	Status        PaymentStatus
	PaymentMethod PaymentMethod
	TransactionID string
	PaymentDate   *time.Time
	Amount        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaymentSummary aggregates payment info for response enrichment.
type PaymentSummary struct {
	OrderID       int64
	Status        PaymentStatus
	PaymentMethod PaymentMethod
	TransactionID string
	PaymentDate   *time.Time
	Amount        float64
}
