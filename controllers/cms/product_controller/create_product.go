package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/wilsonAa123/seriprint-pro/cache"
	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a new product (UUID v7 generated server-side)
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Default status if not provided
	if req.Status == "" {
		req.Status = models.ProductStatusDraft
	}
	if req.StockStatus == "" {
		req.StockStatus = models.StockStatusOnOrder
	}

	// Validate category exists if provided
	if req.CategoryID != nil {
		var category models.Category
		if err := config.DB.WithContext(ctx).
			Select("id").
			First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}
	}

	// SKU must be unique
	var existing int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("sku = ?", req.SKU).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this SKU already exists"))
		return
	}

	product := models.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Description:   req.Description,
		Price:         req.Price,
		InternalCost:  req.InternalCost,
		CategoryID:    req.CategoryID,
		Status:        req.Status,
		StockStatus:   req.StockStatus,
		StockQuantity: req.StockQuantity,
		MinStockAlert: req.MinStockAlert,
	}

	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[ERROR] Failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product: "+err.Error()))
		return
	}

	// Reload with category for the response
	if err := config.DB.WithContext(ctx).
		Preload("Category", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, slug, parent_id")
		}).
		First(&product, "id = ?", product.ID).Error; err != nil {
		log.Printf("[ERROR] Failed to reload product: %v", err)
		// Product is created, just missing relationship - still return success
	}

	// Published products feed the storefront catalog
	if product.Status == models.ProductStatusPublished {
		catalog_cache.Invalidate()
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
