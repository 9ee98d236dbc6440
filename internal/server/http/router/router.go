package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vpetrenko/shopadmin/internal/server/http/dto"
	"github.com/vpetrenko/shopadmin/internal/server/http/handlers"
	"github.com/vpetrenko/shopadmin/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AdminFacade, images handlers.ImageStore, pinger handlers.Pinger, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "method not allowed"})
	})

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	mediaHandler := handlers.NewMediaHandler(images)
	healthHandler := handlers.NewHealthHandler(pinger)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Health)

	admin := api.Group("/admin")
	admin.POST("/login", authHandler.Login)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.AdminRequired(facade))
	adminAuth.POST("/orders/status", orderHandler.UpdateStatus)
	adminAuth.POST("/orders/payment", paymentHandler.UpdateStatus)
	adminAuth.GET("/orders/:id/events", orderHandler.Events)
	adminAuth.POST("/media", mediaHandler.Handle)

	return engine
}
