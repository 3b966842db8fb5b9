package router

import (
	"ewastehub/internal/adapter/api/handler"
	"ewastehub/internal/adapter/api/middleware"
	"ewastehub/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth and profile routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, loginLimiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()
	userHandler := handler.GetUserHandler()

	// Public routes
	e.POST("/api/auth/signup", authHandler.Signup)
	e.POST("/api/auth/login", authHandler.Login, middleware.RateLimit(loginLimiter))

	// Protected routes
	protected := e.Group("/api/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
	protected.PUT("/profile", userHandler.UpdateProfile, roleMiddleware.LoadRole)
}
