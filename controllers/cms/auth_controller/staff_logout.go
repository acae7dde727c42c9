package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/models"
)

// StaffLogout godoc
// @Summary Staff logout
// @Description Clear the staff session cookie
// @Tags CMS - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/auth/logout [post]
func StaffLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("staff_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
