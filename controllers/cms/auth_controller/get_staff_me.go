package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/middleware"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// GetStaffMe godoc
// @Summary Get current staff profile
// @Description Return the authenticated staff member's profile
// @Tags CMS - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/admin/auth/me [get]
func GetStaffMe(c *gin.Context) {
	staffID, ok := middleware.GetStaffIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var profile models.Profile
	if err := config.DB.WithContext(ctx).
		First(&profile, "id = ?", staffID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Profile not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", profile.ToResponse()))
}
