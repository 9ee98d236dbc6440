package repository

import (
	"context"

	"github.com/vpetrenko/shopadmin/internal/domain/model"
)

// PaymentRepository describes persistence operations with payments.
type PaymentRepository interface {
	GetByOrder(ctx context.Context, orderID int64) (*model.Payment, error)
	// Apply upserts the payment row keyed by order and synchronizes the
	// owning order's payment_status and total inside one transaction.
	Apply(ctx context.Context, payment *model.Payment, orderTotal float64) error
	// Summary aggregates payment info for an order, falling back to the
	// order's own payment fields when no payment row exists.
	Summary(ctx context.Context, orderID int64) (*model.PaymentSummary, error)
}
