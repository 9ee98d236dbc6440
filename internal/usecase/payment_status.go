package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	domainErrors "github.com/vpetrenko/shopadmin/internal/domain/errors"
	"github.com/vpetrenko/shopadmin/internal/domain/model"
	"github.com/vpetrenko/shopadmin/internal/domain/repository"
)

const manualTransactionPrefix = "MAN"

// now is overridable in tests for deterministic transaction ids.
var now = time.Now

// PaymentStatusUseCase records payment state changes against orders.
type PaymentStatusUseCase struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	events   repository.EventRepository
	gate     *PaymentGate
}

// NewPaymentStatusUseCase constructs PaymentStatusUseCase.
func NewPaymentStatusUseCase(orders repository.OrderRepository, payments repository.PaymentRepository, events repository.EventRepository, gate *PaymentGate) *PaymentStatusUseCase {
	return &PaymentStatusUseCase{orders: orders, payments: payments, events: events, gate: gate}
}

// Update upserts the order's payment record and synchronizes the order's
// payment status and recomputed total inside one transaction.
func (u *PaymentStatusUseCase) Update(ctx context.Context, adminID, orderID int64, status model.PaymentStatus, transactionID string) (*model.PaymentSummary, error) {
	if orderID <= 0 {
		return nil, domainErrors.ErrInvalidOrderID
	}
	if !model.ValidPaymentStatus(status) {
		return nil, domainErrors.ErrInvalidPaymentStatus
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	attempt := &model.ValidationEvent{
		Event:   model.EventPaymentStatusAttempt,
		OrderID: orderID,
		AdminID: adminID,
		Details: map[string]any{
			"old_status":     string(order.PaymentStatus),
			"new_status":     string(status),
			"payment_method": string(order.PaymentMethod),
		},
	}
	if err := u.events.Append(ctx, attempt); err != nil {
		return nil, fmt.Errorf("log payment attempt: %w", err)
	}

	var paymentDate *time.Time
	if status == model.PaymentStatusPaid {
		if transactionID == "" {
			transactionID = GenerateTransactionID()
		}
		ts := now()
		paymentDate = &ts
	}

	total, err := u.orders.ItemsTotal(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("recompute order %d total: %w", orderID, err)
	}

	payment := &model.Payment{
		OrderID:       orderID,
		Status:        status,
		PaymentMethod: order.PaymentMethod,
		TransactionID: transactionID,
		PaymentDate:   paymentDate,
		Amount:        total,
	}
	if err := u.payments.Apply(ctx, payment, total); err != nil {
		return nil, fmt.Errorf("apply payment for order %d: %w", orderID, err)
	}

	applied := &model.ValidationEvent{
		Event:   model.EventPaymentStatusUpdated,
		OrderID: orderID,
		AdminID: adminID,
		Details: map[string]any{
			"new_status":     string(status),
			"payment_method": string(order.PaymentMethod),
			"transaction_id": transactionID,
			"amount":         total,
		},
	}
	if err := u.events.Append(ctx, applied); err != nil {
		return nil, fmt.Errorf("log payment update: %w", err)
	}

	return u.gate.OrderPaymentSummary(ctx, orderID)
}

// GenerateTransactionID synthesizes an id for manually recorded payments:
// prefix, 14-digit timestamp, 3-digit random suffix.
func GenerateTransactionID() string {
	return fmt.Sprintf("%s%s%03d", manualTransactionPrefix, now().Format("20060102150405"), rand.Intn(1000))
}
