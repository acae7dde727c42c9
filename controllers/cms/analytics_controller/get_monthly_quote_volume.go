package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetMonthlyQuoteVolume godoc
// @Summary Get monthly quote volume for last 12 months
// @Description Returns quote counts and quoted amounts per month for chart visualization
// @Tags CMS - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyQuoteVolume}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/analytics/monthly-volume [get]
func GetMonthlyQuoteVolume(c *gin.Context) {
	log.Printf("[admin.analytics-monthly-volume] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()

	rows, err := config.Pool.Query(ctx, `
		SELECT
			TO_CHAR(date_trunc('month', created_at), 'Mon') AS month,
			EXTRACT(MONTH FROM created_at)::int AS month_number,
			COUNT(*)::int AS quotes,
			COALESCE(SUM(total_amount), 0)::float8 AS quoted
		FROM quotes
		WHERE created_at >= $1
		GROUP BY date_trunc('month', created_at), TO_CHAR(date_trunc('month', created_at), 'Mon'), EXTRACT(MONTH FROM created_at)
		ORDER BY date_trunc('month', created_at) ASC
	`, now.AddDate(0, -12, 0))
	if err != nil {
		log.Printf("[admin.analytics-monthly-volume] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly quote volume"))
		return
	}
	defer rows.Close()

	monthlyMap := make(map[int]models.MonthlyQuoteVolume)
	for rows.Next() {
		var m models.MonthlyQuoteVolume
		if err := rows.Scan(&m.Month, &m.MonthNumber, &m.Quotes, &m.Quoted); err != nil {
			log.Printf("[admin.analytics-monthly-volume] ERROR scan err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read monthly quote volume"))
			return
		}
		monthlyMap[m.MonthNumber] = m
	}
	if err := rows.Err(); err != nil {
		log.Printf("[admin.analytics-monthly-volume] ERROR rows err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read monthly quote volume"))
		return
	}

	// Fill missing months with zeroes so charts always get 12 data points
	monthNames := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	completeData := make([]models.MonthlyQuoteVolume, 0, 12)
	startMonth := now.AddDate(0, -11, 0)

	for i := 0; i < 12; i++ {
		currentMonth := startMonth.AddDate(0, i, 0)
		monthNum := int(currentMonth.Month())

		if data, exists := monthlyMap[monthNum]; exists {
			completeData = append(completeData, data)
		} else {
			completeData = append(completeData, models.MonthlyQuoteVolume{
				Month:       monthNames[monthNum-1],
				MonthNumber: monthNum,
			})
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly quote volume fetched successfully", completeData))
}
