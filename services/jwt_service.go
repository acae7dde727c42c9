package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StaffJWTClaims represents the JWT claims for back-office staff tokens
type StaffJWTClaims struct {
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and verification
type JWTService struct {
	secretKey string
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{
		secretKey: secretKey,
	}
	return nil
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	if jwtService == nil {
		// Fallback to environment variable if not initialized
		secretKey := os.Getenv("JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: secretKey}
	}
	return jwtService
}

// GenerateStaffJWT creates a new JWT token for a staff profile.
// Token expires in 7 days.
func (j *JWTService) GenerateStaffJWT(profileID, email string) (string, error) {
	if profileID == "" || email == "" {
		return "", errors.New("profileID and email cannot be empty")
	}

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour)

	claims := StaffJWTClaims{
		ProfileID: profileID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    "seriprint-pro",
			Subject:   profileID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// VerifyStaffJWT validates a token and returns its claims
func (j *JWTService) VerifyStaffJWT(tokenString string) (*StaffJWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffJWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*StaffJWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// GenerateStaffJWT is a package-level convenience wrapper
func GenerateStaffJWT(profileID, email string) (string, error) {
	return GetJWTService().GenerateStaffJWT(profileID, email)
}

// VerifyStaffJWT is a package-level convenience wrapper
func VerifyStaffJWT(tokenString string) (*StaffJWTClaims, error) {
	return GetJWTService().VerifyStaffJWT(tokenString)
}

// CustomerJWTClaims represents the JWT claims for storefront customer sessions
type CustomerJWTClaims struct {
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateCustomerJWT creates a session token for a storefront customer.
// Customer sessions expire in 24 hours.
func (j *JWTService) GenerateCustomerJWT(profileID, email, name string) (string, error) {
	if profileID == "" {
		return "", errors.New("profileID cannot be empty")
	}

	now := time.Now()
	expiresAt := now.Add(24 * time.Hour)

	claims := CustomerJWTClaims{
		ProfileID: profileID,
		Email:     email,
		Name:      name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    "seriprint-pro",
			Subject:   profileID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GenerateCustomerJWT is a package-level convenience wrapper
func GenerateCustomerJWT(profileID, email, name string) (string, error) {
	return GetJWTService().GenerateCustomerJWT(profileID, email, name)
}
