package test

import (
	"context"

	domainErrors "github.com/vpetrenko/shopadmin/internal/domain/errors"
	"github.com/vpetrenko/shopadmin/internal/domain/model"
)

// AdminRepositoryStub stores operator accounts in-memory for tests.
type AdminRepositoryStub struct {
	Admins map[string]*model.Admin
	ByID   map[int64]*model.Admin
	Err    error
}

// NewAdminRepositoryStub constructs stub repository with initialized maps.
func NewAdminRepositoryStub() *AdminRepositoryStub {
	return &AdminRepositoryStub{
		Admins: make(map[string]*model.Admin),
		ByID:   make(map[int64]*model.Admin),
	}
}

// Add registers an admin in both lookup maps.
func (s *AdminRepositoryStub) Add(admin *model.Admin) {
	s.Admins[admin.Login] = admin
	s.ByID[admin.ID] = admin
}

// GetByLogin fetches admin by login or returns not found.
func (s *AdminRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.Admins[login]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches admin by identifier or returns not found.
func (s *AdminRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.ByID[id]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	Orders   map[int64]*model.Order
	Payments map[int64]*model.Payment
	Totals   map[int64]float64
	Updates  []model.OrderStatus
	Events   []*model.ValidationEvent
	Err      error
	UpdateFn func(context.Context, int64, model.OrderStatus, *model.ValidationEvent) error
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders:   make(map[int64]*model.Order),
		Payments: make(map[int64]*model.Payment),
		Totals:   make(map[int64]float64),
	}
}

// GetByID returns configured order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetWithPayment returns order joined with its payment row.
func (s *OrderRepositoryStub) GetWithPayment(ctx context.Context, id int64) (*model.Order, *model.Payment, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return order, s.Payments[id], nil
}

// UpdateStatus records the transition and the audit event.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, event *model.ValidationEvent) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, status, event)
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	s.Updates = append(s.Updates, status)
	if event != nil {
		s.Events = append(s.Events, event)
	}
	return nil
}

// ItemsTotal returns the configured item sum for the order.
func (s *OrderRepositoryStub) ItemsTotal(ctx context.Context, orderID int64) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Totals[orderID], nil
}

// PaymentRepositoryStub stores payments in-memory for tests.
type PaymentRepositoryStub struct {
	Payments  map[int64]*model.Payment
	Orders    map[int64]*model.Order
	Summaries map[int64]*model.PaymentSummary
	ApplyFn   func(context.Context, *model.Payment, float64) error
	Err       error
}

// NewPaymentRepositoryStub constructs stub repository with initialized maps.
func NewPaymentRepositoryStub() *PaymentRepositoryStub {
	return &PaymentRepositoryStub{
		Payments:  make(map[int64]*model.Payment),
		Orders:    make(map[int64]*model.Order),
		Summaries: make(map[int64]*model.PaymentSummary),
	}
}

// GetByOrder returns configured payment or not found.
func (s *PaymentRepositoryStub) GetByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if payment, ok := s.Payments[orderID]; ok {
		return payment, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Apply upserts the payment and mirrors the status on the owning order.
func (s *PaymentRepositoryStub) Apply(ctx context.Context, payment *model.Payment, orderTotal float64) error {
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, payment, orderTotal)
	}
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.Payments[payment.OrderID]
	if ok {
		existing.Status = payment.Status
		if payment.TransactionID != "" {
			existing.TransactionID = payment.TransactionID
		}
		if payment.PaymentDate != nil {
			existing.PaymentDate = payment.PaymentDate
		}
		existing.Amount = payment.Amount
	} else {
		stored := *payment
		s.Payments[payment.OrderID] = &stored
	}
	if order, ok := s.Orders[payment.OrderID]; ok {
		order.PaymentStatus = payment.Status
		order.TotalPrice = orderTotal
	}
	return nil
}

// Summary returns configured summary or derives one from stored state.
func (s *PaymentRepositoryStub) Summary(ctx context.Context, orderID int64) (*model.PaymentSummary, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if summary, ok := s.Summaries[orderID]; ok {
		return summary, nil
	}
	if payment, ok := s.Payments[orderID]; ok {
		return &model.PaymentSummary{
			OrderID:       orderID,
			Status:        payment.Status,
			PaymentMethod: payment.PaymentMethod,
			TransactionID: payment.TransactionID,
			PaymentDate:   payment.PaymentDate,
			Amount:        payment.Amount,
		}, nil
	}
	if order, ok := s.Orders[orderID]; ok {
		return &model.PaymentSummary{OrderID: orderID, Status: order.PaymentStatus, PaymentMethod: order.PaymentMethod, Amount: order.TotalPrice}, nil
	}
	return nil, domainErrors.ErrNotFound
}

// EventRepositoryStub accumulates audit records in-memory.
type EventRepositoryStub struct {
	Appended []*model.ValidationEvent
	Err      error
}

// Append stores the event or returns the configured error.
func (s *EventRepositoryStub) Append(ctx context.Context, event *model.ValidationEvent) error {
	if s.Err != nil {
		return s.Err
	}
	s.Appended = append(s.Appended, event)
	return nil
}

// ListByOrder returns appended events for an order, newest first.
func (s *EventRepositoryStub) ListByOrder(ctx context.Context, orderID int64, limit int) ([]model.ValidationEvent, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.ValidationEvent
	for i := len(s.Appended) - 1; i >= 0 && len(result) < limit; i-- {
		if s.Appended[i].OrderID == orderID {
			result = append(result, *s.Appended[i])
		}
	}
	return result, nil
}
