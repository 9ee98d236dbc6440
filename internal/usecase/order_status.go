package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/vpetrenko/shopadmin/internal/domain/errors"
	"github.com/vpetrenko/shopadmin/internal/domain/model"
	"github.com/vpetrenko/shopadmin/internal/domain/repository"
)

// StatusUpdateResult describes the outcome of an order status update.
// When the gate rejects the transition Decision carries the rejection and
// Order/Payment stay nil.
type StatusUpdateResult struct {
	Decision *GateDecision
	Order    *model.Order
	Payment  *model.Payment
}

// OrderStatusUseCase applies admin-initiated order status transitions.
type OrderStatusUseCase struct {
	orders repository.OrderRepository
	events repository.EventRepository
	gate   *PaymentGate
}

// NewOrderStatusUseCase constructs OrderStatusUseCase.
func NewOrderStatusUseCase(orders repository.OrderRepository, events repository.EventRepository, gate *PaymentGate) *OrderStatusUseCase {
	return &OrderStatusUseCase{orders: orders, events: events, gate: gate}
}

// Update validates the requested status, consults the gate, and if allowed
// persists the transition transactionally together with its audit event.
func (u *OrderStatusUseCase) Update(ctx context.Context, adminID, orderID int64, status model.OrderStatus) (*StatusUpdateResult, error) {
	if orderID <= 0 {
		return nil, domainErrors.ErrInvalidOrderID
	}
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidOrderStatus
	}

	decision, err := u.gate.CanUpdateOrderStatus(ctx, adminID, orderID, status)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return &StatusUpdateResult{Decision: decision}, nil
	}

	event := &model.ValidationEvent{
		Event:   model.EventOrderStatusUpdated,
		OrderID: orderID,
		AdminID: adminID,
		Details: map[string]any{"new_status": string(status)},
	}
	if err := u.orders.UpdateStatus(ctx, orderID, status, event); err != nil {
		return nil, fmt.Errorf("update order %d status: %w", orderID, err)
	}

	order, payment, err := u.orders.GetWithPayment(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reload order %d: %w", orderID, err)
	}

	return &StatusUpdateResult{Decision: decision, Order: order, Payment: payment}, nil
}

// Events returns recent audit records for an order.
func (u *OrderStatusUseCase) Events(ctx context.Context, orderID int64, limit int) ([]model.ValidationEvent, error) {
	if orderID <= 0 {
		return nil, domainErrors.ErrInvalidOrderID
	}
	return u.events.ListByOrder(ctx, orderID, limit)
}
