package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetCategories godoc
// @Summary Get the category tree
// @Description Retrieve parent categories with their subcategories and product counts
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var parents []models.Category
	if err := config.DB.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("display_order ASC, created_at ASC").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, created_at ASC")
		}).
		Find(&parents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	// Product counts per category in one grouped query
	type countResult struct {
		CategoryID string `gorm:"column:category_id"`
		Count      int    `gorm:"column:count"`
	}
	var counts []countResult
	if err := config.DB.WithContext(ctx).
		Table("products").
		Select("category_id, COUNT(*) as count").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&counts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	productCounts := make(map[string]int, len(counts))
	for _, cr := range counts {
		productCounts[cr.CategoryID] = cr.Count
	}

	response := make([]models.CategoryWithProducts, len(parents))
	for i, parent := range parents {
		children := make([]models.CategoryWithProducts, len(parent.Children))
		for j, child := range parent.Children {
			children[j] = models.CategoryWithProducts{
				ID:           child.ID,
				Name:         child.Name,
				Slug:         child.Slug,
				Description:  child.Description,
				ParentID:     child.ParentID,
				IsActive:     child.IsActive,
				DisplayOrder: child.DisplayOrder,
				CreatedAt:    child.CreatedAt,
				UpdatedAt:    child.UpdatedAt,
				Products:     productCounts[child.ID.String()],
			}
		}

		response[i] = models.CategoryWithProducts{
			ID:           parent.ID,
			Name:         parent.Name,
			Slug:         parent.Slug,
			Description:  parent.Description,
			ParentID:     parent.ParentID,
			IsActive:     parent.IsActive,
			DisplayOrder: parent.DisplayOrder,
			CreatedAt:    parent.CreatedAt,
			UpdatedAt:    parent.UpdatedAt,
			Products:     productCounts[parent.ID.String()],
			Children:     children,
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", response))
}
