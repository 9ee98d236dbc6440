package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/vpetrenko/shopadmin/internal/app"
	"github.com/vpetrenko/shopadmin/internal/config"
	"github.com/vpetrenko/shopadmin/internal/domain/repository"
	"github.com/vpetrenko/shopadmin/internal/storage/postgres"
	"github.com/vpetrenko/shopadmin/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		SessionSecret:   "secret",
		SessionTTL:      time.Minute,
		UploadDir:       t.TempDir(),
		MaxUploadSize:   1 << 20,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	adminRepo := test.NewAdminRepositoryStub()
	orderRepo := test.NewOrderRepositoryStub()
	paymentRepo := test.NewPaymentRepositoryStub()
	eventRepo := &test.EventRepositoryStub{}

	var facade *app.AdminFacade
	fxApp := fx.New(
		fx.NopLogger,
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Decorate(
				func() repository.AdminRepository { return adminRepo },
				func() repository.OrderRepository { return orderRepo },
				func() repository.PaymentRepository { return paymentRepo },
				func() repository.EventRepository { return eventRepo },
			),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected admin facade instance")
	}
}
