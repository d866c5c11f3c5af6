// Package api assembles the HTTP surface of the deal scanner: health checks,
// Prometheus metrics and the Huma-described /api/v1 operations on Echo.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/deal-scanner/internal/api/handlers"
	"github.com/donaldgifford/deal-scanner/internal/api/middleware"
	"github.com/donaldgifford/deal-scanner/internal/store"
)

const (
	apiTitle   = "Deal Scanner API"
	apiVersion = "1.0.0"
)

// Deps are the collaborators served by the router.
type Deps struct {
	Store    handlers.Pinger
	Registry store.SearchRegistry
	Stats    handlers.StatsProvider
	Scanner  handlers.CycleRunner
	Logger   *slog.Logger

	SearchOptions []handlers.SearchHandlerOption
}

// NewRouter builds the Echo instance with middleware, health checks, /metrics and
// the API operations. The OpenAPI document is served at /openapi.json and
// the reference UI at /docs.
func NewRouter(deps Deps) *echo.Echo {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(logger))
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(deps.Store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cfg := huma.DefaultConfig(apiTitle, apiVersion)
	cfg.Info.Description = "Saved searches, statistics and manual scans for the deal scanner."
	humaAPI := humaecho.New(e, cfg)

	handlers.RegisterSearchRoutes(humaAPI, handlers.NewSearchHandler(deps.Registry, deps.SearchOptions...))
	handlers.RegisterStatsRoutes(humaAPI, handlers.NewStatsHandler(deps.Stats))
	handlers.RegisterScanRoutes(humaAPI, handlers.NewScanHandler(deps.Scanner))

	return e
}
