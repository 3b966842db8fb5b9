package router

import (
	"ewastehub/internal/adapter/api/middleware"
	"ewastehub/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, loginLimiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, authMiddleware, roleMiddleware, loginLimiter)
	SetupEWasteRouter(e, authMiddleware, roleMiddleware)
	SetupBulkEWasteRouter(e, authMiddleware, roleMiddleware)
	SetupHealthRouter(e)
}
