package repository

import (
	"context"

	"github.com/vpetrenko/shopadmin/internal/domain/model"
)

// AdminRepository describes access to operator accounts.
type AdminRepository interface {
	GetByLogin(ctx context.Context, login string) (*model.Admin, error)
	GetByID(ctx context.Context, id int64) (*model.Admin, error)
}
