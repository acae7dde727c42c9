package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetQuoteOverview godoc
// @Summary Get quote analytics overview
// @Description Month-over-month quoting volume, amounts, conversion rate and pending backlog
// @Tags CMS - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.QuoteAnalyticsOverview}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/analytics/overview [get]
func GetQuoteOverview(c *gin.Context) {
	log.Printf("[admin.analytics-overview] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := currentMonthStart.AddDate(0, -1, 0)

	var overview models.QuoteAnalyticsOverview

	// Current vs previous month, one aggregate query
	row := config.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE created_at >= $1)                                        AS current_quotes,
			COUNT(*) FILTER (WHERE created_at >= $2 AND created_at < $1)                    AS last_quotes,
			COALESCE(SUM(total_amount) FILTER (WHERE created_at >= $1), 0)::float8          AS current_quoted,
			COALESCE(SUM(total_amount) FILTER (WHERE created_at >= $2 AND created_at < $1), 0)::float8 AS last_quoted,
			COUNT(*) FILTER (WHERE status = 'pendiente')                                    AS pending_quotes,
			COALESCE(AVG(total_amount), 0)::float8                                          AS average_total,
			COUNT(*)                                                                        AS total_quotes,
			COUNT(*) FILTER (WHERE status = 'convertida')                                   AS converted_quotes
		FROM quotes
	`, currentMonthStart, lastMonthStart)

	var totalQuotes, convertedQuotes int
	if err := row.Scan(
		&overview.CurrentMonthQuotes,
		&overview.LastMonthQuotes,
		&overview.CurrentMonthQuoted,
		&overview.LastMonthQuoted,
		&overview.PendingQuotes,
		&overview.AverageQuoteTotal,
		&totalQuotes,
		&convertedQuotes,
	); err != nil {
		log.Printf("[admin.analytics-overview] ERROR query overview err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch quote analytics"))
		return
	}

	growth := func(current, last float64) float64 {
		if last == 0 {
			if current > 0 {
				return 100
			}
			return 0
		}
		return (current - last) / last * 100
	}
	overview.QuotesGrowthPercent = growth(float64(overview.CurrentMonthQuotes), float64(overview.LastMonthQuotes))
	overview.QuotedGrowthPercent = growth(overview.CurrentMonthQuoted, overview.LastMonthQuoted)

	if totalQuotes > 0 {
		overview.ConversionRate = float64(convertedQuotes) / float64(totalQuotes) * 100
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quote analytics fetched successfully", overview))
}
