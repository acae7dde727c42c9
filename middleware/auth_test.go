package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/wilsonAa123/seriprint-pro/models"
)

func adminGuardedRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/restricted",
		func(c *gin.Context) {
			if role != "" {
				c.Set("staffRole", role)
			}
			c.Next()
		},
		RequireAdminMiddleware(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)
	return router
}

func TestRequireAdminMiddlewareAllowsAdmin(t *testing.T) {
	router := adminGuardedRouter(models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminMiddlewareBlocksOtherStaff(t *testing.T) {
	for _, role := range []string{models.RoleSales, models.RoleDesigner, models.RoleCustomer} {
		router := adminGuardedRouter(role)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, role)
	}
}

func TestRequireAdminMiddlewareBlocksMissingRole(t *testing.T) {
	router := adminGuardedRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetStaffIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetStaffIDFromContext(c)
	assert.False(t, ok)

	c.Set("staffID", "some-id")
	id, ok := GetStaffIDFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, "some-id", id)
}
