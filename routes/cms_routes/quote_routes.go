package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/controllers/cms/quote_controller"
	"github.com/wilsonAa123/seriprint-pro/middleware"
)

func SetupQuoteRoutes(rg *gin.RouterGroup) {
	quote := rg.Group("/quotes")
	quote.Use(middleware.StaffAuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read Routes (Staff Auth)
	// ════════════════════════════════════════════════════════════
	quote.GET("", quote_controller.GetQuotes)
	quote.GET("/stats", quote_controller.GetQuoteStats)
	quote.GET("/:id", quote_controller.GetQuoteByID)
	quote.GET("/:id/pdf", quote_controller.DownloadQuotePDF)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Staff Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	writes := quote.Group("")
	writes.Use(middleware.ActivityLoggingMiddleware())
	{
		writes.POST("", quote_controller.CreateQuote)
		writes.PATCH("/:id", quote_controller.UpdateQuote)
		writes.PATCH("/:id/status", quote_controller.UpdateQuoteStatus)
		writes.DELETE("/:id", quote_controller.DeleteQuote)

		writes.POST("/:id/attachments", quote_controller.UploadQuoteAttachments)
		writes.POST("/:id/send-pdf", quote_controller.SendQuotePDF)
	}
}
