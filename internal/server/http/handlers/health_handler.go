package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vpetrenko/shopadmin/internal/server/http/dto"
)

// HealthHandler reports service readiness.
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.pinger.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true})
}
