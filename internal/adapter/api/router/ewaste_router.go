package router

import (
	"ewastehub/internal/adapter/api/handler"
	"ewastehub/internal/adapter/api/middleware"
	"ewastehub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetupEWasteRouter initializes individual e-waste listing routes. Every
// route requires authentication; the collect transition is additionally
// gated to collectors and admins.
func SetupEWasteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	ewasteHandler := handler.GetEWasteHandler()

	ewaste := e.Group("/api/ewaste")
	ewaste.Use(authMiddleware.Authenticate)
	ewaste.Use(roleMiddleware.LoadRole)

	ewaste.POST("", ewasteHandler.Create)
	ewaste.GET("", ewasteHandler.ListAll)
	ewaste.GET("/my-posts", ewasteHandler.ListMine)
	ewaste.GET("/:id", ewasteHandler.GetByID)
	ewaste.PUT("/:id", ewasteHandler.Update)
	ewaste.DELETE("/:id", ewasteHandler.Delete)

	ewaste.PUT("/:id/collect", ewasteHandler.MarkCollected,
		roleMiddleware.RequireRole(entity.RoleCollector, entity.RoleAdmin))
}
