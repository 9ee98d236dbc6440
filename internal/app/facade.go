package app

import (
	"context"

	"github.com/vpetrenko/shopadmin/internal/domain/model"
	pkgAuth "github.com/vpetrenko/shopadmin/internal/pkg/auth"
	"github.com/vpetrenko/shopadmin/internal/usecase"
)

// AdminFacade aggregates the back-office use cases behind one surface
// consumed by the HTTP layer.
type AdminFacade struct {
	auth     *usecase.AuthUseCase
	orders   *usecase.OrderStatusUseCase
	payments *usecase.PaymentStatusUseCase
}

// NewAdminFacade constructs AdminFacade.
func NewAdminFacade(auth *usecase.AuthUseCase, orders *usecase.OrderStatusUseCase, payments *usecase.PaymentStatusUseCase) *AdminFacade {
	return &AdminFacade{auth: auth, orders: orders, payments: payments}
}

func (f *AdminFacade) Login(ctx context.Context, login, password string) (string, error) {
	return f.auth.Authenticate(ctx, login, password)
}

func (f *AdminFacade) ParseToken(token string) (*pkgAuth.Session, error) {
	return f.auth.ParseToken(token)
}

func (f *AdminFacade) UpdateOrderStatus(ctx context.Context, adminID, orderID int64, status model.OrderStatus) (*usecase.StatusUpdateResult, error) {
	return f.orders.Update(ctx, adminID, orderID, status)
}

func (f *AdminFacade) UpdatePaymentStatus(ctx context.Context, adminID, orderID int64, status model.PaymentStatus, transactionID string) (*model.PaymentSummary, error) {
	return f.payments.Update(ctx, adminID, orderID, status, transactionID)
}

func (f *AdminFacade) OrderEvents(ctx context.Context, orderID int64, limit int) ([]model.ValidationEvent, error) {
	return f.orders.Events(ctx, orderID, limit)
}
