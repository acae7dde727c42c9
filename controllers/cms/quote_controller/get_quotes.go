package quote_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetQuotes godoc
// @Summary Get paginated quotes
// @Description Retrieve all quotes with pagination and optional filtering
// @Tags CMS - Quotes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(pendiente, enviada, aceptada, rechazada, convertida)
// @Param search query string false "Search by quote number, customer name or phone"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/quotes [get]
func GetQuotes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	query := config.DB.Model(&models.Quote{})

	if status := c.Query("status"); status != "" && models.IsValidQuoteStatus(status) {
		query = query.Where("status = ?", status)
	}

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("quote_number ILIKE ? OR customer_name ILIKE ? OR customer_phone ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count quotes"))
		return
	}

	quotes := make([]models.Quote, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Items").
		Find(&quotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch quotes"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Quotes fetched successfully", quotes, meta))
}
