package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vpetrenko/shopadmin/internal/server/http/handlers"
	testhelpers "github.com/vpetrenko/shopadmin/internal/test"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(testhelpers.AdminFacadeStub{}, testhelpers.ImageStoreStub{}, testhelpers.PingerStub{}, logger)
}

func TestSetupRoutes(t *testing.T) {
	engine := newTestEngine()

	t.Run("health", func(t *testing.T) {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for health, got %d", resp.Code)
		}
	})

	t.Run("login", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"login": "boss", "password": "secret"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for login, got %d", resp.Code)
		}
	})

	t.Run("order status with token", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{"order_id": 7, "status": "processing"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token")
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for order status, got %d: %s", resp.Code, resp.Body.String())
		}
	})

	t.Run("payment status with token", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{"order_id": 7, "payment_status": "paid"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/payment", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token")
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for payment status, got %d: %s", resp.Code, resp.Body.String())
		}
	})

	t.Run("order events with token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/7/events", nil)
		req.Header.Set("Authorization", "Bearer token")
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for events, got %d: %s", resp.Code, resp.Body.String())
		}
	})

	t.Run("media with token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/media", strings.NewReader("action=delete&type=product&filename=x.png"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Authorization", "Bearer token")
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for media, got %d: %s", resp.Code, resp.Body.String())
		}
	})
}

func TestSetupRejectsUnauthenticated(t *testing.T) {
	engine := newTestEngine()

	body, _ := json.Marshal(map[string]any{"order_id": 7, "status": "processing"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}
}

func TestSetupMethodNotAllowed(t *testing.T) {
	engine := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/status", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", resp.Code)
	}
}

var _ handlers.AdminFacade = (*testhelpers.AdminFacadeStub)(nil)
