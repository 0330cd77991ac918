package domain

import "context"

// ListFilter narrows list queries. Zero-value fields are ignored;
// a nil IsActive means both statuses.
type ListFilter struct {
	Limit      int
	Offset     int
	IsActive   *bool
	SearchTerm string
}

// CategoryRepository is the write side for categories
type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id CategoryID) error
	ExistsByName(ctx context.Context, name CategoryName) (bool, error)
	ExistsByNameExcludingID(ctx context.Context, name CategoryName, id CategoryID) (bool, error)
}

// CategoryQueryRepository is the read side for categories
type CategoryQueryRepository interface {
	FindByID(ctx context.Context, id CategoryID) (*Category, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*Category, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
}

// DepartmentRepository is the write side for departments
type DepartmentRepository interface {
	Save(ctx context.Context, department *Department) error
	Update(ctx context.Context, department *Department) error
	Delete(ctx context.Context, id DepartmentID) error
	ExistsByName(ctx context.Context, name DepartmentName) (bool, error)
	ExistsByNameExcludingID(ctx context.Context, name DepartmentName, id DepartmentID) (bool, error)
	ExistsByCode(ctx context.Context, code DepartmentCode) (bool, error)
	ExistsByCodeExcludingID(ctx context.Context, code DepartmentCode, id DepartmentID) (bool, error)
}

// DepartmentQueryRepository is the read side for departments
type DepartmentQueryRepository interface {
	FindByID(ctx context.Context, id DepartmentID) (*Department, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*Department, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
}

// VendorRepository is the write side for vendors
type VendorRepository interface {
	Save(ctx context.Context, vendor *Vendor) error
	Update(ctx context.Context, vendor *Vendor) error
	Delete(ctx context.Context, id VendorID) error
	ExistsByName(ctx context.Context, name VendorName) (bool, error)
	ExistsByNameExcludingID(ctx context.Context, name VendorName, id VendorID) (bool, error)
	ExistsByEmail(ctx context.Context, email VendorEmail) (bool, error)
	ExistsByEmailExcludingID(ctx context.Context, email VendorEmail, id VendorID) (bool, error)
}

// VendorQueryRepository is the read side for vendors
type VendorQueryRepository interface {
	FindByID(ctx context.Context, id VendorID) (*Vendor, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*Vendor, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
}
