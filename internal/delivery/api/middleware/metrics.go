package middleware

import (
	"time"

	"homesec/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request counts and latency per route template.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

		return nil
	}
}
