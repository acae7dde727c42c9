package customer_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetCustomers godoc
// @Summary Get paginated customers
// @Description Retrieve customers with pagination, search and quoting activity
// @Tags CMS - Customers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search by name, email, phone or company"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/customers [get]
func GetCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	query := config.DB.Model(&models.Customer{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"full_name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR company ILIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count customers"))
		return
	}

	customers := make([]models.Customer, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	// Quoting activity per customer in one grouped query
	type quoteAgg struct {
		CustomerID  string  `gorm:"column:customer_id"`
		Quotes      int     `gorm:"column:quotes"`
		TotalQuoted float64 `gorm:"column:total_quoted"`
	}
	var aggs []quoteAgg
	if len(customers) > 0 {
		ids := make([]string, len(customers))
		for i, cust := range customers {
			ids[i] = cust.ID.String()
		}
		if err := config.DB.
			Table("quotes").
			Select("customer_id, COUNT(*) as quotes, COALESCE(SUM(total_amount), 0) as total_quoted").
			Where("customer_id IN ?", ids).
			Group("customer_id").
			Scan(&aggs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to aggregate quotes"))
			return
		}
	}

	aggByID := make(map[string]quoteAgg, len(aggs))
	for _, a := range aggs {
		aggByID[a.CustomerID] = a
	}

	response := make([]models.CustomerWithQuotes, len(customers))
	for i, cust := range customers {
		agg := aggByID[cust.ID.String()]
		response[i] = models.CustomerWithQuotes{
			Customer:    cust,
			Quotes:      agg.Quotes,
			TotalQuoted: agg.TotalQuoted,
		}
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers fetched successfully", response, meta))
}
