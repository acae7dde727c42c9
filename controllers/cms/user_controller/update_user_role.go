package user_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/middleware"
	"github.com/wilsonAa123/seriprint-pro/models"
)

// UpdateUserRole godoc
// @Summary Update a user's role
// @Description Change a profile's role. Admin only. An admin cannot demote themselves.
// @Tags CMS - Users
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Param role body models.UpdateUserRoleRequest true "New role"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/users/{id}/role [patch]
func UpdateUserRole(c *gin.Context) {
	idParam := c.Param("id")
	profileID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var req models.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Admins cannot change their own role; another admin must do it
	if staffID, ok := middleware.GetStaffIDFromContext(c); ok && staffID == profileID.String() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "You cannot change your own role"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var profile models.Profile
	if err := config.DB.WithContext(ctx).
		First(&profile, "id = ?", profileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	previousRole := profile.Role
	if err := config.DB.WithContext(ctx).
		Model(&profile).
		Update("role", req.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update user role"))
		return
	}
	profile.Role = req.Role

	log.Printf("✅ User role changed: %s %s → %s", profileID, previousRole, req.Role)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User role updated successfully", profile.ToResponse()))
}
