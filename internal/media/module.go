package media

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/vpetrenko/shopadmin/internal/config"
)

// Module provides the image validator collaborator.
var Module = fx.Provide(newValidator)

type validatorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newValidator(p validatorParams) *Validator {
	return NewValidator(p.Config.UploadDir, p.Config.MaxUploadSize, p.Logger)
}
