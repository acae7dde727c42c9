package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/controllers/cms/analytics_controller"
	"github.com/wilsonAa123/seriprint-pro/middleware"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	analytics.Use(middleware.StaffAuthMiddleware())

	analytics.GET("/overview", analytics_controller.GetQuoteOverview)
	analytics.GET("/monthly-volume", analytics_controller.GetMonthlyQuoteVolume)
	analytics.GET("/top-products", analytics_controller.GetTopQuotedProducts)
}
