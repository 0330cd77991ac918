package command

import (
	"time"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
)

// CategoryDTO is the transport shape of a category
type CategoryDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryView maps a category aggregate to its transport shape
func CategoryView(category *domain.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:          category.ID().String(),
		Name:        category.Name().String(),
		Description: category.Description().String(),
		Status:      category.Status().String(),
		CreatedAt:   category.CreatedAt(),
		UpdatedAt:   category.UpdatedAt(),
	}
}

// DepartmentDTO is the transport shape of a department
type DepartmentDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DepartmentView maps a department aggregate to its transport shape
func DepartmentView(department *domain.Department) *DepartmentDTO {
	return &DepartmentDTO{
		ID:          department.ID().String(),
		Name:        department.Name().String(),
		Code:        department.Code().String(),
		Description: department.Description().String(),
		Status:      department.Status().String(),
		CreatedAt:   department.CreatedAt(),
		UpdatedAt:   department.UpdatedAt(),
	}
}

// VendorDTO is the transport shape of a vendor
type VendorDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GSTNumber string    `json:"gst_number,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VendorView maps a vendor aggregate to its transport shape
func VendorView(vendor *domain.Vendor) *VendorDTO {
	return &VendorDTO{
		ID:        vendor.ID().String(),
		Name:      vendor.Name().String(),
		GSTNumber: vendor.GSTNumber().String(),
		Email:     vendor.Email().String(),
		Phone:     vendor.Phone().String(),
		Address:   vendor.Address().String(),
		Status:    vendor.Status().String(),
		CreatedAt: vendor.CreatedAt(),
		UpdatedAt: vendor.UpdatedAt(),
	}
}
