package middleware

import (
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/service"
)

// HeaderRateLimitRemaining reports the caller's remaining allowance for the
// operation within the current window.
const HeaderRateLimitRemaining = "X-RateLimit-Remaining"

// RateLimitMiddleware counts sensitive operations per account (or per client IP
// when unauthenticated). It only counts and reports; enforcement is left to the
// infrastructure in front of the service.
type RateLimitMiddleware struct {
	counter service.RateCounter
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(counter service.RateCounter, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{counter: counter, cfg: cfg, logger: logger}
}

// Count returns a middleware that hits the counter for the named operation.
// A counter failure is logged and the request proceeds; availability of the
// auth flows never depends on Redis.
func (m *RateLimitMiddleware) Count(operation string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.cfg.RateLimit == nil || !m.cfg.RateLimit.Enabled {
				return next(c)
			}

			ctx := c.Request().Context()

			scope := c.RealIP()
			if principal, ok := GetPrincipal(c); ok {
				scope = principal.Account.ID.String()
			}

			remaining, err := m.counter.Hit(ctx, scope, operation, m.cfg.RateLimit.Limit, m.cfg.RateLimit.Window)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).
					Warn("Rate counter unavailable", slog.String("operation", operation), slog.Any("error", err))

				return next(c)
			}

			c.Response().Header().Set(HeaderRateLimitRemaining, strconv.Itoa(remaining))

			return next(c)
		}
	}
}
