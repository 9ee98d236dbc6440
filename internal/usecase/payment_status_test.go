package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	domainErrors "github.com/vpetrenko/shopadmin/internal/domain/errors"
	"github.com/vpetrenko/shopadmin/internal/domain/model"
)

var transactionIDPattern = regexp.MustCompile(`^MAN\d{14}\d{3}$`)

type appliedPayment struct {
	payment *model.Payment
	total   float64
}

func newPaymentStatusFixture(order *model.Order, total float64, events *recordingEventRepository) (*PaymentStatusUseCase, *[]appliedPayment) {
	applied := &[]appliedPayment{}
	orders := stubOrderRepository{
		getFn:   func(context.Context, int64) (*model.Order, error) { return order, nil },
		totalFn: func(context.Context, int64) (float64, error) { return total, nil },
	}
	payments := stubPaymentRepository{
		applyFn: func(ctx context.Context, payment *model.Payment, orderTotal float64) error {
			*applied = append(*applied, appliedPayment{payment: payment, total: orderTotal})
			return nil
		},
		summaryFn: func(ctx context.Context, orderID int64) (*model.PaymentSummary, error) {
			if len(*applied) == 0 {
				return &model.PaymentSummary{OrderID: orderID}, nil
			}
			last := (*applied)[len(*applied)-1]
			return &model.PaymentSummary{
				OrderID:       orderID,
				Status:        last.payment.Status,
				PaymentMethod: last.payment.PaymentMethod,
				TransactionID: last.payment.TransactionID,
				PaymentDate:   last.payment.PaymentDate,
				Amount:        last.payment.Amount,
			}, nil
		},
	}
	gate := NewPaymentGate(orders, payments, events, testLogger())
	return NewPaymentStatusUseCase(orders, payments, events, gate), applied
}

func TestPaymentStatusUpdateRejectsInvalidInput(t *testing.T) {
	events := &recordingEventRepository{}
	uc, applied := newPaymentStatusFixture(orderFixture(model.PaymentMethodCOD, model.PaymentStatusPending), 10, events)

	if _, err := uc.Update(context.Background(), 1, -5, model.PaymentStatusPaid, ""); !errors.Is(err, domainErrors.ErrInvalidOrderID) {
		t.Fatalf("expected invalid order id error, got %v", err)
	}
	if _, err := uc.Update(context.Background(), 1, 42, model.PaymentStatus("settled"), ""); !errors.Is(err, domainErrors.ErrInvalidPaymentStatus) {
		t.Fatalf("expected invalid payment status error, got %v", err)
	}
	if len(*applied) != 0 || len(events.appended) != 0 {
		t.Fatal("expected no writes before validation passes")
	}
}

func TestPaymentStatusUpdateOrderNotFound(t *testing.T) {
	events := &recordingEventRepository{}
	orders := stubOrderRepository{getFn: func(context.Context, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	gate := NewPaymentGate(orders, stubPaymentRepository{}, events, testLogger())
	uc := NewPaymentStatusUseCase(orders, stubPaymentRepository{}, events, gate)

	if _, err := uc.Update(context.Background(), 1, 404, model.PaymentStatusPaid, ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestPaymentStatusUpdateGeneratesTransactionID(t *testing.T) {
	events := &recordingEventRepository{}
	uc, applied := newPaymentStatusFixture(orderFixture(model.PaymentMethodCard, model.PaymentStatusPending), 125.5, events)

	summary, err := uc.Update(context.Background(), 3, 42, model.PaymentStatusPaid, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !transactionIDPattern.MatchString(summary.TransactionID) {
		t.Fatalf("generated transaction id %q does not match MAN<timestamp><random> pattern", summary.TransactionID)
	}
	if summary.PaymentDate == nil {
		t.Fatal("expected payment date to be set for paid status")
	}
	if summary.Amount != 125.5 {
		t.Fatalf("expected amount recomputed from items, got %v", summary.Amount)
	}

	if len(*applied) != 1 {
		t.Fatalf("expected one payment apply, got %d", len(*applied))
	}
	if (*applied)[0].total != 125.5 {
		t.Fatalf("expected order total 125.5, got %v", (*applied)[0].total)
	}
}

func TestPaymentStatusUpdateKeepsSuppliedTransactionID(t *testing.T) {
	events := &recordingEventRepository{}
	uc, applied := newPaymentStatusFixture(orderFixture(model.PaymentMethodBank, model.PaymentStatusPending), 60, events)

	summary, err := uc.Update(context.Background(), 1, 42, model.PaymentStatusPaid, "GW-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TransactionID != "GW-123" {
		t.Fatalf("expected supplied transaction id to be kept, got %q", summary.TransactionID)
	}
	if (*applied)[0].payment.TransactionID != "GW-123" {
		t.Fatalf("unexpected stored transaction id %q", (*applied)[0].payment.TransactionID)
	}
}

func TestPaymentStatusUpdateNonPaidHasNoPaymentDate(t *testing.T) {
	events := &recordingEventRepository{}
	uc, applied := newPaymentStatusFixture(orderFixture(model.PaymentMethodCOD, model.PaymentStatusPending), 30, events)

	if _, err := uc.Update(context.Background(), 1, 42, model.PaymentStatusFailed, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payment := (*applied)[0].payment
	if payment.PaymentDate != nil {
		t.Fatal("expected no payment date for failed status")
	}
	if payment.TransactionID != "" {
		t.Fatalf("expected no synthesized transaction id for failed status, got %q", payment.TransactionID)
	}
}

func TestPaymentStatusUpdateAuditTrail(t *testing.T) {
	events := &recordingEventRepository{}
	uc, _ := newPaymentStatusFixture(orderFixture(model.PaymentMethodCard, model.PaymentStatusPending), 75, events)

	if _, err := uc.Update(context.Background(), 9, 42, model.PaymentStatusPaid, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.appended) != 2 {
		t.Fatalf("expected attempt and applied audit events, got %d", len(events.appended))
	}
	if events.appended[0].Event != model.EventPaymentStatusAttempt {
		t.Fatalf("expected attempt event first, got %q", events.appended[0].Event)
	}
	if events.appended[1].Event != model.EventPaymentStatusUpdated {
		t.Fatalf("expected updated event second, got %q", events.appended[1].Event)
	}
	for _, e := range events.appended {
		if e.AdminID != 9 || e.OrderID != 42 {
			t.Fatalf("audit event missing actor/order: %+v", e)
		}
	}
}

func TestPaymentStatusUpdateRollsUpApplyError(t *testing.T) {
	boom := errors.New("tx aborted")
	events := &recordingEventRepository{}
	orders := stubOrderRepository{
		getFn:   func(context.Context, int64) (*model.Order, error) { return orderFixture(model.PaymentMethodCOD, model.PaymentStatusPending), nil },
		totalFn: func(context.Context, int64) (float64, error) { return 10, nil },
	}
	payments := stubPaymentRepository{applyFn: func(context.Context, *model.Payment, float64) error { return boom }}
	gate := NewPaymentGate(orders, payments, events, testLogger())
	uc := NewPaymentStatusUseCase(orders, payments, events, gate)

	if _, err := uc.Update(context.Background(), 1, 42, model.PaymentStatusPaid, ""); !errors.Is(err, boom) {
		t.Fatalf("expected apply error to propagate, got %v", err)
	}
	if len(events.appended) != 1 {
		t.Fatalf("expected only the attempt event on failure, got %d", len(events.appended))
	}
}

func TestGenerateTransactionIDFormat(t *testing.T) {
	restore := now
	t.Cleanup(func() { now = restore })
	now = func() time.Time { return time.Date(2024, 5, 17, 13, 45, 9, 0, time.UTC) }

	id := GenerateTransactionID()
	if !transactionIDPattern.MatchString(id) {
		t.Fatalf("transaction id %q does not match pattern", id)
	}
	if id[:17] != "MAN20240517134509" {
		t.Fatalf("unexpected timestamp portion %q", id[:17])
	}
}
