package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"
	"github.com/gin-gonic/gin"
)

// StaffAuthMiddleware validates the staff JWT (cookie or Authorization header)
// and gates the back office: only admin, vendedor and diseñador roles pass.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from cookie first, then Authorization header
		token, err := c.Cookie("staff_token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		// Validate and parse JWT
		claims, err := services.VerifyStaffJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		// Fetch the profile to re-derive the role on every request
		var profile models.Profile
		if err := config.DB.WithContext(ctx).
			Select("id, email, full_name, role").
			Where("id = ?", claims.ProfileID).
			First(&profile).Error; err != nil {
			log.Printf("[auth] failed to fetch profile: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - profile not found"))
			c.Abort()
			return
		}

		if !models.IsStaffRole(profile.Role) {
			log.Printf("[auth] non-staff profile attempted back-office access: %s", claims.ProfileID)
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - staff access required"))
			c.Abort()
			return
		}

		// Set staff info in context
		c.Set("staffID", claims.ProfileID)
		c.Set("staffEmail", claims.Email)
		c.Set("staffRole", profile.Role)

		c.Next()
	}
}

// RequireAdminMiddleware checks that the staff member is an admin.
// Role changes and user management are admin-only.
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffRole, exists := c.Get("staffRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if staffRole != models.RoleAdmin {
			log.Printf("[auth] non-admin attempted restricted action")
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetStaffIDFromContext returns the authenticated staff profile id
func GetStaffIDFromContext(c *gin.Context) (string, bool) {
	staffID, exists := c.Get("staffID")
	if !exists {
		return "", false
	}
	return staffID.(string), true
}

// GetStaffRoleFromContext returns the authenticated staff role
func GetStaffRoleFromContext(c *gin.Context) (string, bool) {
	role, exists := c.Get("staffRole")
	if !exists {
		return "", false
	}
	return role.(string), true
}
