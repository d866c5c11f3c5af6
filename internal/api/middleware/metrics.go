// Package middleware provides Echo middleware for the deal scanner API.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/deal-scanner/internal/metrics"
)

// healthGauges maps health check paths to their up/down gauge. Health and scrape
// paths are kept out of the request histograms.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// labelled by route template, so /owners/{owner}/searches is one series.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}

			if route == "/metrics" {
				return next(c)
			}
			if gauge, ok := healthGauges[route]; ok {
				err := next(c)
				gauge.Set(boolGauge(c.Response().Status < 300))
				return err
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok && !c.Response().Committed {
				status = he.Code
			}
			labels := []string{c.Request().Method, route, strconv.Itoa(status)}

			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}

func boolGauge(up bool) float64 {
	if up {
		return 1
	}
	return 0
}
