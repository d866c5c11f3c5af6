package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const defaultReadyTimeout = 2 * time.Second

// Pinger reports whether a backend is reachable. The registry and seen
// stores are checked through one aggregate Pinger.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides liveness and readiness endpoints.
type HealthHandler struct {
	stores       Pinger
	readyTimeout time.Duration
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithReadyTimeout bounds how long a readiness check waits on the stores.
func WithReadyTimeout(d time.Duration) HealthOption {
	return func(h *HealthHandler) {
		if d > 0 {
			h.readyTimeout = d
		}
	}
}

// NewHealthHandler creates a HealthHandler that pings stores on /readyz.
func NewHealthHandler(stores Pinger, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{stores: stores, readyTimeout: defaultReadyTimeout}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Healthz returns 200 while the process is serving. It never touches the
// stores, so a slow backend cannot get the scanner restarted.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 when every store answers within the ready timeout and
// 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.readyTimeout)
	defer cancel()

	if err := h.stores.Ping(ctx); err != nil {
		c.Logger().Warnf("readiness check failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
