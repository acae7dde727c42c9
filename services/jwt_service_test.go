package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffJWTRoundTrip(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	token, err := svc.GenerateStaffJWT("0191a2b3-0000-7000-8000-000000000001", "admin@seriprint.cl")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyStaffJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "0191a2b3-0000-7000-8000-000000000001", claims.ProfileID)
	assert.Equal(t, "admin@seriprint.cl", claims.Email)
	assert.Equal(t, "seriprint-pro", claims.Issuer)
}

func TestStaffJWTRejectsWrongSecret(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}
	other := &JWTService{secretKey: "another-secret"}

	token, err := svc.GenerateStaffJWT("id", "staff@seriprint.cl")
	require.NoError(t, err)

	_, err = other.VerifyStaffJWT(token)
	assert.Error(t, err)
}

func TestGenerateStaffJWTRequiresFields(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	_, err := svc.GenerateStaffJWT("", "staff@seriprint.cl")
	assert.Error(t, err)

	_, err = svc.GenerateStaffJWT("id", "")
	assert.Error(t, err)
}

func TestGenerateCustomerJWT(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	token, err := svc.GenerateCustomerJWT("customer-id", "cliente@gmail.com", "María")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.GenerateCustomerJWT("", "cliente@gmail.com", "María")
	assert.Error(t, err)
}
