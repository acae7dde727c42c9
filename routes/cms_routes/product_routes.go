package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/controllers/cms/product_controller"
	"github.com/wilsonAa123/seriprint-pro/middleware"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.StaffAuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read Routes (Staff Auth)
	// ════════════════════════════════════════════════════════════
	product.GET("", product_controller.GetProducts)
	product.GET("/stats", product_controller.GetProductStats)
	product.GET("/:id", product_controller.GetProductByID)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Staff Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	writes := product.Group("")
	writes.Use(middleware.ActivityLoggingMiddleware())
	{
		writes.POST("", product_controller.CreateProduct)
		writes.PATCH("/:id", product_controller.UpdateProduct)
		writes.DELETE("/:id", product_controller.DeleteProduct)

		writes.POST("/:id/images", product_controller.UploadProductImage)
	}
}
