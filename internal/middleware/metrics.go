package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"shoplite/internal/metrics"
)

// Metrics records every handled request by method, route pattern and final
// status code. Registered first so it wraps auth failures too.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		endpoint := c.Route().Path
		m.ObserveRequest(c.Method(), endpoint, c.Response().StatusCode(), time.Since(start))
		return err
	}
}
