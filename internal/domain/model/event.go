package model

import "time"

// Validation event names recorded by the gate and the mutating use cases.
const (
	EventOrderStatusCheck     = "order_status_check"
	EventOrderStatusUpdated   = "order_status_updated"
	EventPaymentStatusAttempt = "payment_status_attempt"
	EventPaymentStatusUpdated = "payment_status_updated"
)

// ValidationEvent is an append-only audit record describing a gate decision
// or an applied state change. Details is a free-form bag of named fields
// persisted as JSONB.
type ValidationEvent struct {
	ID        int64
	Event     string
	OrderID   int64
	AdminID   int64
	Details   map[string]any
	CreatedAt time.Time
}
