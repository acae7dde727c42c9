// ════════════════════════════════════════════════════════════
// Path: utils/login_tracker.go
// Track staff and customer login events
// ════════════════════════════════════════════════════════════

package utils

import (
	"log"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wilsonAa123/seriprint-pro/config"
)

// LogLoginEvent records who signed in, from where and with what. Callers
// treat it as best effort; a failed insert never blocks a login.
func LogLoginEvent(c *gin.Context, profileID uuid.UUID) error {
	userAgent := c.GetHeader("User-Agent")
	ipAddress := GetClientIP(c)

	query := `
		INSERT INTO login_events (
			id, profile_id, logged_in_at, ip_address, user_agent,
			device_type, browser, os
		) VALUES ($1, $2, NOW(), $3, $4, $5, $6, $7)
	`

	_, err := config.Pool.Exec(c.Request.Context(), query,
		uuid.New().String(),
		profileID.String(),
		ipAddress,
		userAgent,
		parseDeviceType(userAgent),
		parseBrowser(userAgent),
		parseOS(userAgent),
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	log.Printf("✅ Login event logged for profile: %s from IP: %s", profileID.String(), ipAddress)
	return nil
}

// parseDeviceType buckets the user agent into mobile, tablet or desktop
func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android"):
		return "mobile"
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		return "tablet"
	default:
		return "desktop"
	}
}

// parseBrowser extracts the browser family. Order matters: Edge and Chrome
// both claim "chrome", and everything WebKit claims "safari".
func parseBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari"):
		return "Safari"
	default:
		return "Other"
	}
}

// parseOS extracts the operating system family
func parseOS(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		return "iOS"
	default:
		return "Other"
	}
}

// GetClientIP resolves the real client IP behind proxies: X-Forwarded-For
// first, then X-Real-IP, then the connection address.
func GetClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		if net.ParseIP(xri) != nil {
			return xri
		}
	}
	return c.ClientIP()
}
