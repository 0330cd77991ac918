package domain

import (
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

// Role is the closed set of authority levels.
type Role string

const (
	RoleStaff   Role = "STAFF"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
	RoleFinance Role = "FINANCE"
)

// roleAuthority is a strict total order over the four roles.
var roleAuthority = map[Role]int{
	RoleAdmin:   4,
	RoleFinance: 3,
	RoleManager: 2,
	RoleStaff:   1,
}

// ParseRole accepts a role case-insensitively and rejects unknown values
func ParseRole(raw string) (Role, error) {
	if raw == "" {
		return "", apperrors.Validation("role cannot be empty")
	}
	role := Role(strings.ToUpper(raw))
	if _, ok := roleAuthority[role]; !ok {
		return "", apperrors.Validation("invalid role: %s, must be one of: STAFF, MANAGER, ADMIN, FINANCE", raw)
	}
	return role, nil
}

// String returns the canonical uppercase form
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	_, ok := roleAuthority[r]
	return ok
}

// HasHigherAuthorityThan compares positions in the role hierarchy
func (r Role) HasHigherAuthorityThan(other Role) bool {
	return roleAuthority[r] > roleAuthority[other]
}

// CanManageUsers reports whether the role may administer user accounts
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// CanApproveExpenses reports whether the role may approve expenses
func (r Role) CanApproveExpenses() bool {
	return r == RoleAdmin || r == RoleManager
}

// CanViewAllExpenses reports whether the role may read every expense
func (r Role) CanViewAllExpenses() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleFinance
}

// CanAccessFinancialReports reports whether the role may read financial reports
func (r Role) CanAccessFinancialReports() bool {
	return r == RoleAdmin || r == RoleFinance
}

// CanViewDepartmentExpenses reports whether the role may read its department's expenses
func (r Role) CanViewDepartmentExpenses() bool {
	return r == RoleManager
}
