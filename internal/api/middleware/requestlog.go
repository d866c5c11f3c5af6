package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// healthPaths are polled by orchestrators. A successful check is logged once
// and again only after a failure.
var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		healthy = make(map[string]bool)
	)

	// quiet reports whether a health check result repeats the previous success.
	quiet := func(path string, ok bool) bool {
		mu.Lock()
		defer mu.Unlock()
		was := healthy[path]
		healthy[path] = ok
		return ok && was
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			failed := status >= 400

			if _, isHealth := healthPaths[path]; isHealth && quiet(path, !failed) {
				return err
			}

			level := slog.LevelInfo
			if failed {
				level = slog.LevelWarn
			}
			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}

// RequestID returns the id assigned by RequestLog, or "" outside it.
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
