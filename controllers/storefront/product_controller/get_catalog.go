package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/wilsonAa123/seriprint-pro/cache"
	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetCatalog godoc
// @Summary Get the public catalog
// @Description Published products filtered by search term, category and stock status. Results come from a short-lived in-memory cache.
// @Tags Storefront - Products
// @Produce json
// @Param search query string false "Case-insensitive search on name and description"
// @Param category query string false "Category ID or 'all'"
// @Param stock_status query string false "Stock status or 'all'" Enums(all, en_stock, bajo_stock, a_pedido, sin_stock)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/catalog [get]
func GetCatalog(c *gin.Context) {
	var filter models.CatalogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
		return
	}

	if !models.ValidCategoryParam(filter.CategoryID) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category parameter"))
		return
	}

	// The published set changes rarely; serve it from cache and filter per request
	products, ok := catalog_cache.Get()
	if !ok {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := config.DB.WithContext(ctx).
			Where("status = ?", models.ProductStatusPublished).
			Order("created_at DESC").
			Preload("Category", func(db *gorm.DB) *gorm.DB {
				return db.Select("id, name, slug, parent_id")
			}).
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("display_order ASC")
			}).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch catalog"))
			return
		}

		catalog_cache.Set(products)
	}

	filtered := filter.Apply(products)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog fetched successfully", gin.H{
		"products": filtered,
		"total":    len(filtered),
	}))
}
