package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vpetrenko/shopadmin/internal/domain/model"
	"github.com/vpetrenko/shopadmin/internal/domain/repository"
)

// Rejection codes reported by the gate.
const (
	CodePaymentRequired = "payment_required"
	CodePaymentInvalid  = "payment_invalid"
)

// GateDecision is the outcome of a payment validation check.
type GateDecision struct {
	Allowed bool
	Message string
	Code    string
}

// PaymentGate decides whether an order status transition is permitted given
// the order's payment state. Every decision is appended to the audit log.
type PaymentGate struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	events   repository.EventRepository
	logger   *slog.Logger
}

// NewPaymentGate constructs PaymentGate.
func NewPaymentGate(orders repository.OrderRepository, payments repository.PaymentRepository, events repository.EventRepository, logger *slog.Logger) *PaymentGate {
	return &PaymentGate{orders: orders, payments: payments, events: events, logger: logger}
}

// CanUpdateOrderStatus checks the payment precondition for moving order to
// newStatus and records the decision.
func (g *PaymentGate) CanUpdateOrderStatus(ctx context.Context, adminID, orderID int64, newStatus model.OrderStatus) (*GateDecision, error) {
	order, err := g.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}

	decision := decide(order, newStatus)

	event := &model.ValidationEvent{
		Event:   model.EventOrderStatusCheck,
		OrderID: orderID,
		AdminID: adminID,
		Details: map[string]any{
			"old_status":     string(order.Status),
			"new_status":     string(newStatus),
			"payment_status": string(order.PaymentStatus),
			"payment_method": string(order.PaymentMethod),
			"allowed":        decision.Allowed,
			"code":           decision.Code,
		},
	}
	if err := g.events.Append(ctx, event); err != nil {
		return nil, fmt.Errorf("log validation event: %w", err)
	}

	if !decision.Allowed {
		g.logger.Info("order status transition rejected",
			slog.Int64("order_id", orderID),
			slog.String("status", string(newStatus)),
			slog.String("code", decision.Code),
		)
	}

	return decision, nil
}

func decide(order *model.Order, newStatus model.OrderStatus) *GateDecision {
	if !newStatus.PaymentDependent() {
		return &GateDecision{Allowed: true}
	}

	switch order.PaymentStatus {
	case model.PaymentStatusPaid:
		return &GateDecision{Allowed: true}
	case model.PaymentStatusRefunded, model.PaymentStatusCanceled:
		return &GateDecision{
			Message: fmt.Sprintf("order cannot be %s: payment is %s", newStatus, order.PaymentStatus),
			Code:    CodePaymentInvalid,
		}
	}

	// Pending or failed payment. Cash on delivery is collected at the door,
	// so shipment and delivery do not require prepayment.
	if !order.PaymentMethod.Prepaid() {
		return &GateDecision{Allowed: true}
	}

	return &GateDecision{
		Message: fmt.Sprintf("order cannot be %s until payment is received", newStatus),
		Code:    CodePaymentRequired,
	}
}

// OrderPaymentSummary returns aggregated payment info for response enrichment.
func (g *PaymentGate) OrderPaymentSummary(ctx context.Context, orderID int64) (*model.PaymentSummary, error) {
	summary, err := g.payments.Summary(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("payment summary for order %d: %w", orderID, err)
	}
	return summary, nil
}
