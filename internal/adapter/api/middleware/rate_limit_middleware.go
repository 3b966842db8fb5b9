package middleware

import (
	"ewastehub/internal/infrastructure/ratelimit"
	"ewastehub/pkg/errors"
	"ewastehub/pkg/logger"
	"ewastehub/pkg/response"

	"github.com/labstack/echo/v4"
)

// RateLimit guards an endpoint with a per-IP token bucket. Used on login to
// slow down credential stuffing.
func RateLimit(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, wait := limiter.Allow(ip)
			if !allowed {
				logger.Warn("Rate limit exceeded for %s (retry in %v)", ip, wait)
				return response.Error(c, errors.TooManyRequests("Too many attempts, slow down"))
			}

			return next(c)
		}
	}
}
