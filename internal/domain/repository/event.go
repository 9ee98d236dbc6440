package repository

import (
	"context"

	"github.com/vpetrenko/shopadmin/internal/domain/model"
)

// EventRepository appends and reads audit records.
type EventRepository interface {
	Append(ctx context.Context, event *model.ValidationEvent) error
	ListByOrder(ctx context.Context, orderID int64, limit int) ([]model.ValidationEvent, error)
}
