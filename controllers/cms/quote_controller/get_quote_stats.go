package quote_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetQuoteStats godoc
// @Summary Get quote statistics
// @Description Returns counts per status, total quoted amount and conversion rate
// @Tags CMS - Quotes
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/quotes/stats [get]
func GetQuoteStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	type statusCount struct {
		Status string `gorm:"column:status"`
		Count  int    `gorm:"column:count"`
	}

	var counts []statusCount
	if err := config.DB.WithContext(ctx).
		Model(&models.Quote{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count quotes"))
		return
	}

	byStatus := make(map[string]int, len(counts))
	total := 0
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
		total += sc.Count
	}

	var totalQuoted float64
	if err := config.DB.WithContext(ctx).
		Model(&models.Quote{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&totalQuoted).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sum quote totals"))
		return
	}

	conversionRate := 0.0
	if total > 0 {
		conversionRate = float64(byStatus[models.QuoteStatusConverted]) / float64(total) * 100
	}

	stats := models.QuoteStatsResponseItem{
		TotalQuotes:     total,
		PendingQuotes:   byStatus[models.QuoteStatusPending],
		SentQuotes:      byStatus[models.QuoteStatusSent],
		AcceptedQuotes:  byStatus[models.QuoteStatusAccepted],
		RejectedQuotes:  byStatus[models.QuoteStatusRejected],
		ConvertedQuotes: byStatus[models.QuoteStatusConverted],
		TotalQuoted:     totalQuoted,
		ConversionRate:  conversionRate,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quote stats fetched successfully", stats))
}
