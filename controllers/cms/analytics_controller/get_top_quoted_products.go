package analytics_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetTopQuotedProducts godoc
// @Summary Get most quoted products
// @Description Returns products ranked by how often they appear in quote line items
// @Tags CMS - Analytics
// @Produce json
// @Param limit query int false "Number of products" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.TopQuotedProduct}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/analytics/top-products [get]
func GetTopQuotedProducts(c *gin.Context) {
	log.Printf("[admin.analytics-top-products] start")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.Pool.Query(ctx, `
		SELECT
			product_name,
			COUNT(*)::int AS times_quoted,
			COALESCE(SUM(quantity), 0)::int AS total_units,
			COALESCE(SUM(subtotal), 0)::float8 AS total_quoted
		FROM quote_items
		GROUP BY product_name
		ORDER BY times_quoted DESC, total_quoted DESC
		LIMIT $1
	`, limit)
	if err != nil {
		log.Printf("[admin.analytics-top-products] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top quoted products"))
		return
	}
	defer rows.Close()

	products := make([]models.TopQuotedProduct, 0, limit)
	for rows.Next() {
		var p models.TopQuotedProduct
		if err := rows.Scan(&p.ProductName, &p.TimesQuoted, &p.TotalUnits, &p.TotalQuoted); err != nil {
			log.Printf("[admin.analytics-top-products] ERROR scan err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read top quoted products"))
			return
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[admin.analytics-top-products] ERROR rows err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read top quoted products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top quoted products fetched successfully", products))
}
