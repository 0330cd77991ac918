package domain

import (
	"github.com/google/uuid"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

// CategoryID identifies an expense category
type CategoryID struct {
	value string
}

func NewCategoryID() CategoryID {
	return CategoryID{value: uuid.NewString()}
}

func ParseCategoryID(value string) (CategoryID, error) {
	if _, err := uuid.Parse(value); err != nil {
		return CategoryID{}, apperrors.Validation("invalid category id: %s", value)
	}
	return CategoryID{value: value}, nil
}

func (id CategoryID) String() string           { return id.value }
func (id CategoryID) IsZero() bool             { return id.value == "" }
func (id CategoryID) Equals(o CategoryID) bool { return id.value == o.value }

// DepartmentID identifies a department
type DepartmentID struct {
	value string
}

func NewDepartmentID() DepartmentID {
	return DepartmentID{value: uuid.NewString()}
}

func ParseDepartmentID(value string) (DepartmentID, error) {
	if _, err := uuid.Parse(value); err != nil {
		return DepartmentID{}, apperrors.Validation("invalid department id: %s", value)
	}
	return DepartmentID{value: value}, nil
}

func (id DepartmentID) String() string             { return id.value }
func (id DepartmentID) IsZero() bool               { return id.value == "" }
func (id DepartmentID) Equals(o DepartmentID) bool { return id.value == o.value }

// VendorID identifies a vendor
type VendorID struct {
	value string
}

func NewVendorID() VendorID {
	return VendorID{value: uuid.NewString()}
}

func ParseVendorID(value string) (VendorID, error) {
	if _, err := uuid.Parse(value); err != nil {
		return VendorID{}, apperrors.Validation("invalid vendor id: %s", value)
	}
	return VendorID{value: value}, nil
}

func (id VendorID) String() string         { return id.value }
func (id VendorID) IsZero() bool           { return id.value == "" }
func (id VendorID) Equals(o VendorID) bool { return id.value == o.value }
