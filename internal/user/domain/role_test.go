package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseRole("staff")
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, role)

	// Surrounding whitespace is not trimmed
	_, err = ParseRole("  staff  ")
	assert.Error(t, err)

	_, err = ParseRole("SUPERUSER")
	assert.Error(t, err)
}

func TestRoleAuthority(t *testing.T) {
	assert.True(t, RoleAdmin.HasHigherAuthorityThan(RoleFinance))
	assert.True(t, RoleFinance.HasHigherAuthorityThan(RoleManager))
	assert.True(t, RoleManager.HasHigherAuthorityThan(RoleStaff))
	assert.False(t, RoleStaff.HasHigherAuthorityThan(RoleAdmin))
	assert.False(t, RoleAdmin.HasHigherAuthorityThan(RoleAdmin))
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleAdmin.CanManageUsers())
	assert.False(t, RoleFinance.CanManageUsers())

	assert.True(t, RoleManager.CanApproveExpenses())
	assert.True(t, RoleAdmin.CanApproveExpenses())
	assert.False(t, RoleStaff.CanApproveExpenses())

	assert.True(t, RoleFinance.CanAccessFinancialReports())
	assert.True(t, RoleAdmin.CanAccessFinancialReports())
	assert.False(t, RoleManager.CanAccessFinancialReports())

	assert.True(t, RoleFinance.CanViewAllExpenses())
	assert.True(t, RoleAdmin.CanViewAllExpenses())
	assert.True(t, RoleManager.CanViewAllExpenses())
	assert.False(t, RoleStaff.CanViewAllExpenses())
}
