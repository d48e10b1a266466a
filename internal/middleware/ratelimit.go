package middleware

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/config"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit caps requests per client IP over a sliding one-minute window.
// A RateLimitMax of 0 (RATE_LIMIT_MAX=0) disables limiting.
func RateLimit(cfg *config.Config) fiber.Handler {
	if cfg.RateLimitMax <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:               cfg.RateLimitMax,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: true, Message: "Too many requests",
			})
		},
	})
}
