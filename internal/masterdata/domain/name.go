package domain

import (
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

const (
	minNameLength = 2
	maxNameLength = 100
)

func validateName(value, label string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", apperrors.Validation("%s name is required", label)
	}
	if len(trimmed) < minNameLength {
		return "", apperrors.Validation("%s name must be at least %d characters long", label, minNameLength)
	}
	if len(trimmed) > maxNameLength {
		return "", apperrors.Validation("%s name must not exceed %d characters", label, maxNameLength)
	}
	return trimmed, nil
}

// CategoryName is the display name of an expense category
type CategoryName struct {
	value string
}

func NewCategoryName(value string) (CategoryName, error) {
	v, err := validateName(value, "category")
	if err != nil {
		return CategoryName{}, err
	}
	return CategoryName{value: v}, nil
}

// CategoryNameFromString rehydrates a stored name without re-validation
func CategoryNameFromString(value string) CategoryName {
	return CategoryName{value: value}
}

func (n CategoryName) String() string             { return n.value }
func (n CategoryName) Equals(o CategoryName) bool { return n.value == o.value }

// DepartmentName is the display name of a department
type DepartmentName struct {
	value string
}

func NewDepartmentName(value string) (DepartmentName, error) {
	v, err := validateName(value, "department")
	if err != nil {
		return DepartmentName{}, err
	}
	return DepartmentName{value: v}, nil
}

func DepartmentNameFromString(value string) DepartmentName {
	return DepartmentName{value: value}
}

func (n DepartmentName) String() string               { return n.value }
func (n DepartmentName) Equals(o DepartmentName) bool { return n.value == o.value }

// VendorName is the display name of a vendor
type VendorName struct {
	value string
}

func NewVendorName(value string) (VendorName, error) {
	v, err := validateName(value, "vendor")
	if err != nil {
		return VendorName{}, err
	}
	return VendorName{value: v}, nil
}

func VendorNameFromString(value string) VendorName {
	return VendorName{value: value}
}

func (n VendorName) String() string           { return n.value }
func (n VendorName) Equals(o VendorName) bool { return n.value == o.value }
