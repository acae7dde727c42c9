package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// DeleteCustomer godoc
// @Summary Delete a customer
// @Description Delete a customer record; their quotes are kept with the embedded contact snapshot
// @Tags CMS - Customers
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/customers/{id} [delete]
func DeleteCustomer(c *gin.Context) {
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

	// Quotes keep their contact snapshot; only the link is detached
	if err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Quote{}).
			Where("customer_id = ?", customerID).
			Update("customer_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete customer"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer deleted successfully", map[string]string{
		"id": customerID.String(),
	}))
}
