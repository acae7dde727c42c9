package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetCustomerByID godoc
// @Summary Get a customer by ID
// @Description Retrieve a customer together with their quote history
// @Tags CMS - Customers
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/customers/{id} [get]
func GetCustomerByID(c *gin.Context) {
	idParam := c.Param("id")
	customerID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var customer models.Customer
	if err := config.DB.WithContext(ctx).
		First(&customer, "id = ?", customerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	var quotes []models.Quote
	if err := config.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&quotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer quotes"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer fetched successfully", gin.H{
		"customer": customer,
		"quotes":   quotes,
	}))
}
