package middleware

import (
	"time"

	"github.com/fadilmartias/submitme/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const (
	defaultRateLimitMax    = 50
	defaultRateLimitWindow = time.Minute
)

// RateLimiter allows max requests per client IP within a sliding window.
// Zero values fall back to 50 requests per minute.
func RateLimiter(max int, window time.Duration) fiber.Handler {
	if max <= 0 {
		max = defaultRateLimitMax
	}
	if window <= 0 {
		window = defaultRateLimitWindow
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(response.ErrorBody{
				Detail: "Too many requests. Please slow down and try again shortly.",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
