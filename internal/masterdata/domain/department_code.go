package domain

import (
	"regexp"
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

var departmentCodePattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// DepartmentCode is an optional short identifier for a department,
// uppercased on creation. The zero value means absent.
type DepartmentCode struct {
	value string
}

func NewDepartmentCode(value string) (DepartmentCode, error) {
	if value == "" {
		return DepartmentCode{}, nil
	}
	code := strings.ToUpper(strings.TrimSpace(value))
	if len(code) < 2 || len(code) > 20 {
		return DepartmentCode{}, apperrors.Validation("department code must be 2-20 characters long")
	}
	if !departmentCodePattern.MatchString(code) {
		return DepartmentCode{}, apperrors.Validation("department code can only contain letters, numbers, underscores, and hyphens")
	}
	return DepartmentCode{value: code}, nil
}

func DepartmentCodeFromString(value string) DepartmentCode {
	return DepartmentCode{value: value}
}

func (c DepartmentCode) String() string               { return c.value }
func (c DepartmentCode) IsZero() bool                 { return c.value == "" }
func (c DepartmentCode) Equals(o DepartmentCode) bool { return c.value == o.value }
