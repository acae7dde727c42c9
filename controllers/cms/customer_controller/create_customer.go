package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// CreateCustomer godoc
// @Summary Create a new customer
// @Description Create a customer record, typically promoted from a public quote submission
// @Tags CMS - Customers
// @Accept json
// @Produce json
// @Param customer body models.CustomerRequest true "Customer details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/admin/customers [post]
func CreateCustomer(c *gin.Context) {
	var req models.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer := models.Customer{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		Company:      req.Company,
		TaxID:        req.TaxID,
		Location:     req.Location,
		CustomerType: req.CustomerType,
		Notes:        req.Notes,
	}

	if err := config.DB.WithContext(ctx).Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create customer: "+err.Error()))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Customer created successfully", customer))
}
