// Package middleware provides Echo middleware for the listing gateway.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/okarpenko/listing-gateway/internal/metrics"
)

// Metrics returns Echo middleware that records request duration and status
// for the gateway's listing, catalog, and upload endpoints. Machine-facing
// paths stay out of the histograms: /metrics is ignored entirely, and the
// health probes drive the 0/1 liveness and readiness gauges instead.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := routePath(c)
			status := c.Response().Status

			switch path {
			case "/healthz":
				setProbeGauge(metrics.HealthzUp, status)
				return err
			case "/readyz":
				setProbeGauge(metrics.ReadyzUp, status)
				return err
			case "/metrics":
				return err
			}

			method := c.Request().Method
			statusStr := strconv.Itoa(status)

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, statusStr).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, statusStr).
				Inc()

			return err
		}
	}
}

// routePath prefers the registered route template over the raw URL so that
// parameterized endpoints like /api/v1/listings/:id stay one metric series.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

// setProbeGauge records a probe outcome: 1 for a 2xx response, 0 otherwise.
func setProbeGauge(g prometheus.Gauge, status int) {
	if status >= 200 && status < 300 {
		g.Set(1)
	} else {
		g.Set(0)
	}
}
