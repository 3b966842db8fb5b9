package router

import (
	"ewastehub/internal/adapter/api/handler"
	"ewastehub/internal/adapter/api/middleware"
	"ewastehub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetupBulkEWasteRouter initializes bulk lot routes. Posting a lot is a
// collector action, purchasing one is an organization action; admins can do
// both.
func SetupBulkEWasteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	bulkHandler := handler.GetBulkEWasteHandler()

	bulk := e.Group("/api/bulk-ewaste")
	bulk.Use(authMiddleware.Authenticate)
	bulk.Use(roleMiddleware.LoadRole)

	bulk.POST("", bulkHandler.Create,
		roleMiddleware.RequireRole(entity.RoleCollector, entity.RoleAdmin))
	bulk.GET("", bulkHandler.ListAll)
	bulk.GET("/my-posts", bulkHandler.ListMine)
	bulk.GET("/:id", bulkHandler.GetByID)
	bulk.PUT("/:id", bulkHandler.Update)
	bulk.DELETE("/:id", bulkHandler.Delete)

	bulk.PUT("/:id/sold", bulkHandler.MarkSold,
		roleMiddleware.RequireRole(entity.RoleOrganization, entity.RoleAdmin))
}
