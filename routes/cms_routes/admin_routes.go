package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wilsonAa123/seriprint-pro/controllers/cms/admin_controller"
	"github.com/wilsonAa123/seriprint-pro/controllers/cms/auth_controller"
	"github.com/wilsonAa123/seriprint-pro/controllers/cms/user_controller"
	"github.com/wilsonAa123/seriprint-pro/middleware"
)

// SetupAdminRoutes sets up auth, user management and activity log routes
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/auth/login", auth_controller.StaffLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Staff Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.StaffAuthMiddleware())
	{
		protected.POST("/auth/logout", auth_controller.StaffLogout)
		protected.GET("/auth/me", auth_controller.GetStaffMe)
	}

	// ════════════════════════════════════════════════════════════
	// Admin Only Routes
	// ════════════════════════════════════════════════════════════

	adminOnly := admin.Group("")
	adminOnly.Use(
		middleware.StaffAuthMiddleware(),
		middleware.RequireAdminMiddleware(),
	)
	{
		// User management
		adminOnly.GET("/users", user_controller.GetUsers)

		// Activity logs
		adminOnly.GET("/activity-logs", admin_controller.GetActivityLogs)
	}

	// Role changes also go through activity logging
	adminWrites := admin.Group("")
	adminWrites.Use(
		middleware.StaffAuthMiddleware(),
		middleware.RequireAdminMiddleware(),
		middleware.ActivityLoggingMiddleware(),
	)
	{
		adminWrites.PATCH("/users/:id/role", user_controller.UpdateUserRole)
	}
}
