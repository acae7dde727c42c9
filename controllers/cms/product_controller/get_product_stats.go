package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetProductStats godoc
// @Summary Get product statistics
// @Description Returns overall product stats including low-stock counts
// @Tags CMS - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	countWhere := func(query string, args ...interface{}) (int64, error) {
		var n int64
		q := config.DB.WithContext(ctx).Model(&models.Product{})
		if query != "" {
			q = q.Where(query, args...)
		}
		return n, q.Count(&n).Error
	}

	totalProducts, err := countWhere("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count total products"))
		return
	}

	publishedProducts, err := countWhere("status = ?", models.ProductStatusPublished)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count published products"))
		return
	}

	draftProducts, err := countWhere("status = ?", models.ProductStatusDraft)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count draft products"))
		return
	}

	archivedProducts, err := countWhere("status = ?", models.ProductStatusArchived)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count archived products"))
		return
	}

	lowStockProducts, err := countWhere("stock_status = ? OR (min_stock_alert > 0 AND stock_quantity <= min_stock_alert)", models.StockStatusLowStock)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count low stock products"))
		return
	}

	outOfStockProducts, err := countWhere("stock_status = ?", models.StockStatusOutStock)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count out-of-stock products"))
		return
	}

	// Average price over products that have one
	var averagePrice float64
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Select("COALESCE(AVG(price), 0)").
		Scan(&averagePrice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to calculate average price"))
		return
	}

	computePct := func(numerator, denominator int64) float64 {
		if denominator == 0 {
			return 0
		}
		return (float64(numerator) / float64(denominator)) * 100
	}

	stats := models.ProductStatsResponseItem{
		TotalProducts:       int(totalProducts),
		PublishedProducts:   int(publishedProducts),
		DraftProducts:       int(draftProducts),
		ArchivedProducts:    int(archivedProducts),
		PercentagePublished: computePct(publishedProducts, totalProducts),
		AveragePrice:        averagePrice,
		LowStockProducts:    int(lowStockProducts),
		OutOfStockProducts:  int(outOfStockProducts),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", stats))
}
