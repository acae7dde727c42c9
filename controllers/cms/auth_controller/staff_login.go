package auth_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"
	"github.com/wilsonAa123/seriprint-pro/utils"
)

// StaffLogin godoc
// @Summary Staff login
// @Description Authenticate back-office staff with email and password
// @Tags CMS - Auth
// @Accept json
// @Produce json
// @Param credentials body models.StaffLoginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/admin/auth/login [post]
func StaffLogin(c *gin.Context) {
	var req models.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Look up profile by email
	var profile models.Profile
	if err := config.DB.WithContext(ctx).
		First(&profile, "email = ?", req.Email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 2: Only staff roles may enter the back office
	if !models.IsStaffRole(profile.Role) {
		log.Printf("[auth] blocked login for non-staff profile: %s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	// Step 3: Verify password
	if profile.PasswordHash == nil ||
		!services.GetStaffAuthService().VerifyPassword(*profile.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	// Step 4: Issue JWT
	email := ""
	if profile.Email != nil {
		email = *profile.Email
	}
	token, err := services.GenerateStaffJWT(profile.ID.String(), email)
	if err != nil {
		log.Printf("[auth] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}

	// Step 5: Set HTTP-only cookie (7 days, matches token lifetime)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("staff_token", token, int((7 * 24 * time.Hour).Seconds()), "/", "", false, true)

	// Step 6: Record last login and the login event (best effort)
	now := time.Now()
	if err := config.DB.WithContext(ctx).
		Model(&profile).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("[auth] failed to update last_login_at: %v", err)
	}
	_ = utils.LogLoginEvent(c, profile.ID)

	log.Printf("✅ Staff login: %s (%s)", email, profile.Role)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.StaffLoginResponse{
		Profile: profile.ToResponse(),
		Token:   token,
	}))
}
