package services

import (
	"golang.org/x/crypto/bcrypt"
)

// StaffAuthService handles password hashing and verification for staff logins
type StaffAuthService struct{}

var staffAuthService = &StaffAuthService{}

// GetStaffAuthService returns the shared auth service
func GetStaffAuthService() *StaffAuthService {
	return staffAuthService
}

// HashPassword creates a bcrypt hash from a plain password
func (s *StaffAuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword checks a plain password against a stored bcrypt hash
func (s *StaffAuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the minimum password length
func (s *StaffAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}
