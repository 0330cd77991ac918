package query

import (
	"context"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
	"github.com/tair/expense-tracker/internal/masterdata/usecase/command"
)

// ListQuery narrows a master data listing
type ListQuery struct {
	Limit      int
	Offset     int
	IsActive   *bool
	SearchTerm string
}

func (q ListQuery) filter() domain.ListFilter {
	return domain.ListFilter{
		Limit:      q.Limit,
		Offset:     q.Offset,
		IsActive:   q.IsActive,
		SearchTerm: q.SearchTerm,
	}
}

// CategoryQueryHandler handles category read operations
type CategoryQueryHandler struct {
	queries domain.CategoryQueryRepository
}

// NewCategoryQueryHandler creates a new category query handler
func NewCategoryQueryHandler(queries domain.CategoryQueryRepository) *CategoryQueryHandler {
	return &CategoryQueryHandler{queries: queries}
}

// CategoryListResult holds a page of categories with the unpaged total
type CategoryListResult struct {
	Items []*command.CategoryDTO `json:"items"`
	Total int64                  `json:"total"`
}

// GetByID retrieves a single category
func (h *CategoryQueryHandler) GetByID(ctx context.Context, rawID string) (*command.CategoryDTO, error) {
	id, err := domain.ParseCategoryID(rawID)
	if err != nil {
		return nil, err
	}
	category, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return command.CategoryView(category), nil
}

// List retrieves categories matching the query
func (h *CategoryQueryHandler) List(ctx context.Context, q ListQuery) (*CategoryListResult, error) {
	categories, err := h.queries.FindAll(ctx, q.filter())
	if err != nil {
		return nil, err
	}
	total, err := h.queries.Count(ctx, q.filter())
	if err != nil {
		return nil, err
	}

	items := make([]*command.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		items = append(items, command.CategoryView(category))
	}
	return &CategoryListResult{Items: items, Total: total}, nil
}

// DepartmentQueryHandler handles department read operations
type DepartmentQueryHandler struct {
	queries domain.DepartmentQueryRepository
}

// NewDepartmentQueryHandler creates a new department query handler
func NewDepartmentQueryHandler(queries domain.DepartmentQueryRepository) *DepartmentQueryHandler {
	return &DepartmentQueryHandler{queries: queries}
}

// DepartmentListResult holds a page of departments with the unpaged total
type DepartmentListResult struct {
	Items []*command.DepartmentDTO `json:"items"`
	Total int64                    `json:"total"`
}

// GetByID retrieves a single department
func (h *DepartmentQueryHandler) GetByID(ctx context.Context, rawID string) (*command.DepartmentDTO, error) {
	id, err := domain.ParseDepartmentID(rawID)
	if err != nil {
		return nil, err
	}
	department, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return command.DepartmentView(department), nil
}

// List retrieves departments matching the query
func (h *DepartmentQueryHandler) List(ctx context.Context, q ListQuery) (*DepartmentListResult, error) {
	departments, err := h.queries.FindAll(ctx, q.filter())
	if err != nil {
		return nil, err
	}
	total, err := h.queries.Count(ctx, q.filter())
	if err != nil {
		return nil, err
	}

	items := make([]*command.DepartmentDTO, 0, len(departments))
	for _, department := range departments {
		items = append(items, command.DepartmentView(department))
	}
	return &DepartmentListResult{Items: items, Total: total}, nil
}

// VendorQueryHandler handles vendor read operations
type VendorQueryHandler struct {
	queries domain.VendorQueryRepository
}

// NewVendorQueryHandler creates a new vendor query handler
func NewVendorQueryHandler(queries domain.VendorQueryRepository) *VendorQueryHandler {
	return &VendorQueryHandler{queries: queries}
}

// VendorListResult holds a page of vendors with the unpaged total
type VendorListResult struct {
	Items []*command.VendorDTO `json:"items"`
	Total int64                `json:"total"`
}

// GetByID retrieves a single vendor
func (h *VendorQueryHandler) GetByID(ctx context.Context, rawID string) (*command.VendorDTO, error) {
	id, err := domain.ParseVendorID(rawID)
	if err != nil {
		return nil, err
	}
	vendor, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return command.VendorView(vendor), nil
}

// List retrieves vendors matching the query
func (h *VendorQueryHandler) List(ctx context.Context, q ListQuery) (*VendorListResult, error) {
	vendors, err := h.queries.FindAll(ctx, q.filter())
	if err != nil {
		return nil, err
	}
	total, err := h.queries.Count(ctx, q.filter())
	if err != nil {
		return nil, err
	}

	items := make([]*command.VendorDTO, 0, len(vendors))
	for _, vendor := range vendors {
		items = append(items, command.VendorView(vendor))
	}
	return &VendorListResult{Items: items, Total: total}, nil
}
