package handlers

import (
	"context"
	"mime/multipart"

	"github.com/vpetrenko/shopadmin/internal/domain/model"
	"github.com/vpetrenko/shopadmin/internal/media"
	pkgAuth "github.com/vpetrenko/shopadmin/internal/pkg/auth"
	"github.com/vpetrenko/shopadmin/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (*pkgAuth.Session, error)
}

// OrderFacade encapsulates order and payment operations exposed via HTTP.
type OrderFacade interface {
	UpdateOrderStatus(ctx context.Context, adminID, orderID int64, status model.OrderStatus) (*usecase.StatusUpdateResult, error)
	UpdatePaymentStatus(ctx context.Context, adminID, orderID int64, status model.PaymentStatus, transactionID string) (*model.PaymentSummary, error)
	OrderEvents(ctx context.Context, orderID int64, limit int) ([]model.ValidationEvent, error)
}

// AdminFacade aggregates the full set of operations used across handlers.
type AdminFacade interface {
	AuthFacade
	OrderFacade
}

// ImageStore is the image validation/storage collaborator.
type ImageStore interface {
	Check(file *multipart.FileHeader, category string) (*media.Result, error)
	Store(file *multipart.FileHeader, category, customName string) (*media.Result, error)
	Delete(category, filename string) error
}

// Pinger reports storage connectivity for the health endpoint.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
