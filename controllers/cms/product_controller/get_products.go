package product_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetProducts godoc
// @Summary Get paginated products
// @Description Retrieve all products with pagination and optional filtering
// @Tags CMS - Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(publicado, borrador, archivado)
// @Param stock_status query string false "Filter by stock status" Enums(en_stock, bajo_stock, a_pedido, sin_stock)
// @Param search query string false "Search by name or SKU"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products [get]
func GetProducts(c *gin.Context) {
	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	// Step 2: Build query with optional filters
	query := config.DB.Model(&models.Product{})

	if status := c.Query("status"); status != "" {
		switch status {
		case models.ProductStatusPublished, models.ProductStatusDraft, models.ProductStatusArchived:
			query = query.Where("status = ?", status)
		}
	}

	if stockStatus := c.Query("stock_status"); stockStatus != "" {
		switch stockStatus {
		case models.StockStatusInStock, models.StockStatusLowStock, models.StockStatusOnOrder, models.StockStatusOutStock:
			query = query.Where("stock_status = ?", stockStatus)
		}
	}

	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR sku ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	// Step 3: Count total products
	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	// Step 4: Fetch products with category and images
	products := make([]models.Product, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Category", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, slug, parent_id")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Step 5: Prepare pagination meta
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, meta))
}
