package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/controllers/cms/customer_controller"
	"github.com/wilsonAa123/seriprint-pro/middleware"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customers")
	customer.Use(middleware.StaffAuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read Routes (Staff Auth)
	// ════════════════════════════════════════════════════════════
	customer.GET("", customer_controller.GetCustomers)
	customer.GET("/:id", customer_controller.GetCustomerByID)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Staff Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	writes := customer.Group("")
	writes.Use(middleware.ActivityLoggingMiddleware())
	{
		writes.POST("", customer_controller.CreateCustomer)
		writes.PATCH("/:id", customer_controller.UpdateCustomer)
		writes.DELETE("/:id", customer_controller.DeleteCustomer)
	}
}
