package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/wilsonAa123/seriprint-pro/cache"
	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// CreateCategory godoc
// @Summary Create a new category
// @Description Create a category or subcategory (parent_id links to a parent)
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Validate parent if provided
	if req.ParentID != nil {
		var parent models.Category
		if err := config.DB.WithContext(ctx).
			Select("id").
			First(&parent, "id = ?", *req.ParentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid parent_id"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}
	}

	// Slug must be unique
	var existing int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Category{}).
		Where("slug = ?", req.Slug).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this slug already exists"))
		return
	}

	category := models.Category{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		ParentID:     req.ParentID,
		IsActive:     true,
		DisplayOrder: req.DisplayOrder,
	}

	if err := config.DB.WithContext(ctx).Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category: "+err.Error()))
		return
	}

	catalog_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
