package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/models"
)

// Logout godoc
// @Summary Customer logout
// @Description Clear the customer session cookie
// @Tags Storefront - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("customer_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
