package test

import (
	"context"
	"mime/multipart"

	"github.com/vpetrenko/shopadmin/internal/domain/model"
	"github.com/vpetrenko/shopadmin/internal/media"
	pkgAuth "github.com/vpetrenko/shopadmin/internal/pkg/auth"
	"github.com/vpetrenko/shopadmin/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	LoginFn func(context.Context, string, string) (string, error)
	ParseFn func(string) (*pkgAuth.Session, error)
}

// Login returns token for successful authentication scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, login, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored session for authenticated admin.
func (s AuthFacadeStub) ParseToken(token string) (*pkgAuth.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Session{AdminID: 1, Role: model.RoleAdmin}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	UpdateOrderFn   func(context.Context, int64, int64, model.OrderStatus) (*usecase.StatusUpdateResult, error)
	UpdatePaymentFn func(context.Context, int64, int64, model.PaymentStatus, string) (*model.PaymentSummary, error)
	EventsFn        func(context.Context, int64, int) ([]model.ValidationEvent, error)
}

// UpdateOrderStatus delegates to provided function or returns an allowed result.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, adminID, orderID int64, status model.OrderStatus) (*usecase.StatusUpdateResult, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, adminID, orderID, status)
	}
	return &usecase.StatusUpdateResult{
		Decision: &usecase.GateDecision{Allowed: true},
		Order:    &model.Order{ID: orderID, Status: status, PaymentStatus: model.PaymentStatusPending, PaymentMethod: model.PaymentMethodCOD},
	}, nil
}

// UpdatePaymentStatus delegates to provided function or returns a summary.
func (s OrderFacadeStub) UpdatePaymentStatus(ctx context.Context, adminID, orderID int64, status model.PaymentStatus, transactionID string) (*model.PaymentSummary, error) {
	if s.UpdatePaymentFn != nil {
		return s.UpdatePaymentFn(ctx, adminID, orderID, status, transactionID)
	}
	return &model.PaymentSummary{OrderID: orderID, Status: status, PaymentMethod: model.PaymentMethodCOD, TransactionID: transactionID}, nil
}

// OrderEvents returns configured audit records.
func (s OrderFacadeStub) OrderEvents(ctx context.Context, orderID int64, limit int) ([]model.ValidationEvent, error) {
	if s.EventsFn != nil {
		return s.EventsFn(ctx, orderID, limit)
	}
	return []model.ValidationEvent{{ID: 1, Event: model.EventOrderStatusCheck, OrderID: orderID}}, nil
}

// AdminFacadeStub aggregates facade dependencies for HTTP layer tests.
type AdminFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
}

// ImageStoreStub simulates the image collaborator.
type ImageStoreStub struct {
	CheckFn  func(*multipart.FileHeader, string) (*media.Result, error)
	StoreFn  func(*multipart.FileHeader, string, string) (*media.Result, error)
	DeleteFn func(string, string) error
}

// Check delegates or reports a valid image.
func (s ImageStoreStub) Check(file *multipart.FileHeader, category string) (*media.Result, error) {
	if s.CheckFn != nil {
		return s.CheckFn(file, category)
	}
	return &media.Result{Valid: true, Name: file.Filename}, nil
}

// Store delegates or reports a stored image.
func (s ImageStoreStub) Store(file *multipart.FileHeader, category, customName string) (*media.Result, error) {
	if s.StoreFn != nil {
		return s.StoreFn(file, category, customName)
	}
	name := customName
	if name == "" {
		name = file.Filename
	}
	return &media.Result{Valid: true, Name: name, Path: category + "/" + name}, nil
}

// Delete delegates or succeeds.
func (s ImageStoreStub) Delete(category, filename string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(category, filename)
	}
	return nil
}

// PingerStub reports configurable storage health.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s PingerStub) HealthCheck(context.Context) error {
	return s.Err
}
