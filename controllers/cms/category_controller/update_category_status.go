package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalog_cache "github.com/wilsonAa123/seriprint-pro/cache"
	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// UpdateCategoryStatus godoc
// @Summary Update category activation
// @Description Activate or deactivate a category; deactivation cascades to subcategories
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param status body models.UpdateCategoryStatusRequest true "New activation state"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/categories/{id}/status [patch]
func UpdateCategoryStatus(c *gin.Context) {
	idParam := c.Param("id")
	categoryID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var input models.UpdateCategoryStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	var category models.Category
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, "id = ?", categoryID).Error; err != nil {
			return err
		}

		if err := tx.Model(&category).Update("is_active", *input.IsActive).Error; err != nil {
			return err
		}

		// Deactivation cascades to all subcategories
		if !*input.IsActive {
			if err := tx.Model(&models.Category{}).
				Where("parent_id = ?", categoryID).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		return tx.First(&category, "id = ?", categoryID).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category status"))
		}
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category status updated successfully", category))
}
