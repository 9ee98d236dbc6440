package repository

import (
	"context"

	"github.com/vpetrenko/shopadmin/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// GetWithPayment returns the order joined with its payment row.
	// The payment may be nil when no payment record exists yet.
	GetWithPayment(ctx context.Context, id int64) (*model.Order, *model.Payment, error)
	// UpdateStatus persists the new status together with the supplied audit
	// event inside a single transaction.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, event *model.ValidationEvent) error
	// ItemsTotal recomputes the order total as the sum of quantity*price
	// across its line items.
	ItemsTotal(ctx context.Context, orderID int64) (float64, error)
}
