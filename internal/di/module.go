package di

import (
	"go.uber.org/fx"

	"github.com/vpetrenko/shopadmin/internal/app"
	"github.com/vpetrenko/shopadmin/internal/config"
	"github.com/vpetrenko/shopadmin/internal/logger"
	"github.com/vpetrenko/shopadmin/internal/media"
	"github.com/vpetrenko/shopadmin/internal/pkg/auth"
	"github.com/vpetrenko/shopadmin/internal/server/http/handlers"
	"github.com/vpetrenko/shopadmin/internal/server/http/router"
	"github.com/vpetrenko/shopadmin/internal/storage/postgres"
	"github.com/vpetrenko/shopadmin/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		media.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.AdminFacade) handlers.AdminFacade { return f },
			func(v *media.Validator) handlers.ImageStore { return v },
			func(s *postgres.Storage) handlers.Pinger { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
