package middleware

import (
	"strconv"
	"time"

	"kostdesk/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latency by route template
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		// Label by route template so ids do not become label values.
		metrics.ObserveHTTPRequest(c.Method(), c.Route().Path, strconv.Itoa(status), time.Since(start))
		return err
	}
}
