package admin_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetActivityLogs godoc
// @Summary Get staff activity logs
// @Description Retrieve activity logs with pagination and optional filters. Admin only.
// @Tags CMS - Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param staff_id query string false "Filter by staff profile ID"
// @Param resource_type query string false "Filter by resource type" Enums(category, product, quote, customer, user)
// @Param action query string false "Filter by action"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit

	query := config.DB.Model(&models.ActivityLog{})

	if staffIDParam := c.Query("staff_id"); staffIDParam != "" {
		staffID, err := uuid.Parse(staffIDParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid staff_id"))
			return
		}
		query = query.Where("staff_id = ?", staffID)
	}

	if resourceType := c.Query("resource_type"); resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count activity logs"))
		return
	}

	logs := make([]models.ActivityLog, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs fetched successfully", logs, meta))
}
