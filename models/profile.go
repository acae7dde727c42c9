package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Any role other than cliente grants back-office access.
const (
	RoleAdmin    = "admin"
	RoleSales    = "vendedor"
	RoleDesigner = "diseñador"
	RoleCustomer = "cliente"
)

// StaffRoles are the roles allowed into the admin panel.
var StaffRoles = []string{RoleAdmin, RoleSales, RoleDesigner}

// IsStaffRole reports whether role grants back-office access.
func IsStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsValidRole reports whether role is one of the enumerated values.
func IsValidRole(role string) bool {
	return IsStaffRole(role) || role == RoleCustomer
}

// Profile represents an application user (staff or customer).
// Email is denormalized from the identity provider.
type Profile struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FullName     string     `json:"full_name" gorm:"not null"`
	Email        *string    `json:"email,omitempty" gorm:"index"`
	Role         string     `json:"role" gorm:"not null;default:'cliente';check:role IN ('admin', 'vendedor', 'diseñador', 'cliente');index"`
	PasswordHash *string    `json:"-" gorm:"column:password_hash"`
	GoogleSub    *string    `json:"-" gorm:"column:google_sub;index"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Profile) TableName() string {
	return "profiles"
}

// ProfileResponse strips credentials from a profile
type ProfileResponse struct {
	ID          uuid.UUID  `json:"id"`
	FullName    string     `json:"full_name"`
	Email       *string    `json:"email,omitempty"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (p Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		FullName:    p.FullName,
		Email:       p.Email,
		Role:        p.Role,
		LastLoginAt: p.LastLoginAt,
		CreatedAt:   p.CreatedAt,
	}
}

// StaffLoginRequest authenticates back-office staff
type StaffLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type StaffLoginResponse struct {
	Profile ProfileResponse `json:"profile"`
	Token   string          `json:"token"`
}

// GoogleUserInfo is the payload returned by Google's userinfo endpoint.
// Both OAuth2 v2 and OIDC field variants are covered.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// UpdateUserRoleRequest changes a profile's role (admin only)
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin vendedor diseñador cliente"`
}
