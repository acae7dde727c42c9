package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/controllers/cms/category_controller"
	"github.com/wilsonAa123/seriprint-pro/middleware"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")
	category.Use(middleware.StaffAuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read Routes (Staff Auth)
	// ════════════════════════════════════════════════════════════
	category.GET("", category_controller.GetCategories)
	category.GET("/:id", category_controller.GetCategoryByID)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Staff Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	writes := category.Group("")
	writes.Use(middleware.ActivityLoggingMiddleware())
	{
		writes.POST("", category_controller.CreateCategory)
		writes.PATCH("/:id", category_controller.UpdateCategory)
		writes.PATCH("/:id/status", category_controller.UpdateCategoryStatus)
		writes.DELETE("/:id", category_controller.DeleteCategory)
	}
}
