// ════════════════════════════════════════════════════════════
// Path: controllers/storefront/auth_controller/google_callback.go
// Google OAuth Callback Handler (customer sign-in)
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wilsonAa123/seriprint-pro/config"
	"github.com/wilsonAa123/seriprint-pro/models"
	"github.com/wilsonAa123/seriprint-pro/services"
	"github.com/wilsonAa123/seriprint-pro/utils"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state token, exchanges the authorization code, creates or updates the customer profile, issues a session cookie and redirects to the storefront.
// @Tags Storefront - Auth
// @Produce json
// @Success 307 "Redirect to storefront after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Router /api/v1/auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ OAuth state mismatch")
		redirectToStorefrontWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		redirectToStorefrontWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ OAuth exchange failed: %v", err)
		redirectToStorefrontWithError(c, "Failed to exchange token")
		return
	}

	// When Google returns an ID token, verify it before trusting the session
	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		if _, err := config.OIDCVerifier.Verify(context.Background(), rawIDToken); err != nil {
			log.Printf("❌ ID token verification failed: %v", err)
			redirectToStorefrontWithError(c, "Invalid identity token")
			return
		}
	}

	client := config.GoogleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.Printf("❌ Failed to get user info: %v", err)
		redirectToStorefrontWithError(c, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		redirectToStorefrontWithError(c, "Failed to read user info")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := json.Unmarshal(body, &googleUser); err != nil {
		log.Printf("❌ Failed to decode user info: %v", err)
		redirectToStorefrontWithError(c, "Failed to decode user info")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}
	if googleID == "" {
		redirectToStorefrontWithError(c, "Google ID not found")
		return
	}

	profile, err := createOrUpdateCustomerProfile(c, &googleUser, googleID)
	if err != nil {
		log.Printf("❌ DB error: %v", err)
		redirectToStorefrontWithError(c, fmt.Sprintf("Database error: %v", err))
		return
	}

	if err := utils.LogLoginEvent(c, profile.ID); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	email := ""
	if profile.Email != nil {
		email = *profile.Email
	}

	jwtToken, err := services.GenerateCustomerJWT(profile.ID.String(), email, profile.FullName)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		redirectToStorefrontWithError(c, "Failed to generate token")
		return
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"customer_token",
		jwtToken,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true,
	)

	// Temporary cookie with profile data for the auth popup to read
	profileJSON, _ := json.Marshal(profile.ToResponse())
	c.SetCookie(
		"user_data",
		string(profileJSON),
		60, // 1 minute (just for transfer)
		"/",
		"",
		isProd,
		false, // NOT httpOnly (popup needs to read it)
	)

	log.Printf("✅ Customer login: %s", email)

	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL()+"/auth-popup")
}

// createOrUpdateCustomerProfile finds the profile by Google subject or email,
// or creates a fresh cliente profile.
func createOrUpdateCustomerProfile(c *gin.Context, googleUser *models.GoogleUserInfo, googleID string) (*models.Profile, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var profile models.Profile
	err := config.DB.WithContext(ctx).
		Where("google_sub = ?", googleID).
		First(&profile).Error
	if err == nil {
		// Keep the display name fresh
		if googleUser.Name != "" && googleUser.Name != profile.FullName {
			if err := config.DB.WithContext(ctx).
				Model(&profile).
				Update("full_name", googleUser.Name).Error; err != nil {
				log.Printf("⚠️  Failed to refresh profile name: %v", err)
			}
			profile.FullName = googleUser.Name
		}
		return &profile, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	// Link an existing email profile to the Google subject
	if googleUser.Email != "" {
		err = config.DB.WithContext(ctx).
			Where("email = ?", googleUser.Email).
			First(&profile).Error
		if err == nil {
			if err := config.DB.WithContext(ctx).
				Model(&profile).
				Update("google_sub", googleID).Error; err != nil {
				return nil, err
			}
			profile.GoogleSub = &googleID
			return &profile, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	// New customer
	var email *string
	if googleUser.Email != "" {
		email = &googleUser.Email
	}
	profile = models.Profile{
		FullName:  googleUser.Name,
		Email:     email,
		Role:      models.RoleCustomer,
		GoogleSub: &googleID,
	}
	if err := config.DB.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}

	log.Printf("✅ New customer profile created: %s", googleUser.Email)
	return &profile, nil
}

// redirectToStorefrontWithError sends the user back to the storefront with
// an error query param. OAuth callbacks can't render API errors usefully.
func redirectToStorefrontWithError(c *gin.Context, message string) {
	c.Redirect(http.StatusTemporaryRedirect,
		fmt.Sprintf("%s/auth-popup?error=%s", config.GetFrontendURL(), message))
}
