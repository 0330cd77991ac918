package repository

import (
	"time"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
)

// Persistence shapes for master data. Unique indexes are the real
// uniqueness guarantee; application-level checks only exist for
// friendlier errors. Optional unique columns store NULL, not the empty
// string, so absent values never collide.

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

type categoryRecord struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string
	Status      string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (categoryRecord) TableName() string {
	return "categories"
}

func recordFromCategory(category *domain.Category) *categoryRecord {
	return &categoryRecord{
		ID:          category.ID().String(),
		Name:        category.Name().String(),
		Description: category.Description().String(),
		Status:      category.Status().String(),
		CreatedAt:   category.CreatedAt(),
		UpdatedAt:   category.UpdatedAt(),
	}
}

func (r *categoryRecord) toDomain() (*domain.Category, error) {
	id, err := domain.ParseCategoryID(r.ID)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return domain.CategoryFromPersistence(
		id,
		domain.CategoryNameFromString(r.Name),
		domain.DescriptionFromString(r.Description),
		status,
		r.CreatedAt,
		r.UpdatedAt,
	), nil
}

type departmentRecord struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Code        *string   `gorm:"uniqueIndex"`
	Description string
	Status      string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (departmentRecord) TableName() string {
	return "departments"
}

func recordFromDepartment(department *domain.Department) *departmentRecord {
	return &departmentRecord{
		ID:          department.ID().String(),
		Name:        department.Name().String(),
		Code:        nullable(department.Code().String()),
		Description: department.Description().String(),
		Status:      department.Status().String(),
		CreatedAt:   department.CreatedAt(),
		UpdatedAt:   department.UpdatedAt(),
	}
}

func (r *departmentRecord) toDomain() (*domain.Department, error) {
	id, err := domain.ParseDepartmentID(r.ID)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return domain.DepartmentFromPersistence(
		id,
		domain.DepartmentNameFromString(r.Name),
		domain.DepartmentCodeFromString(deref(r.Code)),
		domain.DescriptionFromString(r.Description),
		status,
		r.CreatedAt,
		r.UpdatedAt,
	), nil
}

type vendorRecord struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"uniqueIndex;not null"`
	GSTNumber string    `gorm:"column:gst_number"`
	Email     *string   `gorm:"uniqueIndex"`
	Phone     string
	Address   string
	Status    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (vendorRecord) TableName() string {
	return "vendors"
}

func recordFromVendor(vendor *domain.Vendor) *vendorRecord {
	return &vendorRecord{
		ID:        vendor.ID().String(),
		Name:      vendor.Name().String(),
		GSTNumber: vendor.GSTNumber().String(),
		Email:     nullable(vendor.Email().String()),
		Phone:     vendor.Phone().String(),
		Address:   vendor.Address().String(),
		Status:    vendor.Status().String(),
		CreatedAt: vendor.CreatedAt(),
		UpdatedAt: vendor.UpdatedAt(),
	}
}

func (r *vendorRecord) toDomain() (*domain.Vendor, error) {
	id, err := domain.ParseVendorID(r.ID)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return domain.VendorFromPersistence(
		id,
		domain.VendorNameFromString(r.Name),
		domain.GSTNumberFromString(r.GSTNumber),
		domain.VendorEmailFromString(deref(r.Email)),
		domain.PhoneFromString(r.Phone),
		domain.AddressFromString(r.Address),
		status,
		r.CreatedAt,
		r.UpdatedAt,
	), nil
}
