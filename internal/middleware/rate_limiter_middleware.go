package middleware

import (
	"fmt"
	"time"

	"github.com/fadilmartias/talent-fit/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit is a sliding window budget per client IP.
type RateLimit struct {
	Max    int
	Window time.Duration
}

var (
	// DefaultLimit guards every route.
	DefaultLimit = RateLimit{Max: 50, Window: time.Minute}
	// AssessmentLimit guards assessment creation, which calls the reasoning
	// service once per request.
	AssessmentLimit = RateLimit{Max: 5, Window: 10 * time.Second}
)

func (l RateLimit) withDefaults() RateLimit {
	if l.Max <= 0 {
		l.Max = DefaultLimit.Max
	}
	if l.Window <= 0 {
		l.Window = DefaultLimit.Window
	}
	return l
}

// RateLimiter rejects requests over budget with the standard error envelope.
// Each call owns its own counters, so a route limiter does not share state
// with the global one.
func RateLimiter(l RateLimit) fiber.Handler {
	l = l.withDefaults()
	return limiter.New(limiter.Config{
		Max:        l.Max,
		Expiration: l.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusTooManyRequests,
				Kind:    "rate_limited",
				Message: "too many requests",
				Details: fiber.Map{"max": l.Max, "window": l.Window.String()},
			}, fmt.Errorf("rate limit %d per %s exceeded for %s", l.Max, l.Window, c.IP()))
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
