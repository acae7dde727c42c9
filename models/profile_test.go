package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStaffRole(t *testing.T) {
	assert.True(t, IsStaffRole(RoleAdmin))
	assert.True(t, IsStaffRole(RoleSales))
	assert.True(t, IsStaffRole(RoleDesigner))
	assert.False(t, IsStaffRole(RoleCustomer))
	assert.False(t, IsStaffRole(""))
	assert.False(t, IsStaffRole("superadmin"))
}

func TestIsValidRole(t *testing.T) {
	for _, r := range []string{RoleAdmin, RoleSales, RoleDesigner, RoleCustomer} {
		assert.True(t, IsValidRole(r), r)
	}
	assert.False(t, IsValidRole("moderador"))
}
