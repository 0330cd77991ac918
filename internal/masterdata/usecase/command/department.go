package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// CreateDepartmentCommand carries the input for creating a department
type CreateDepartmentCommand struct {
	Name        string
	Code        string
	Description string
}

// DepartmentCommandHandler handles all department write operations
type DepartmentCommandHandler struct {
	repo    domain.DepartmentRepository
	queries domain.DepartmentQueryRepository
}

// NewDepartmentCommandHandler creates a new department command handler
func NewDepartmentCommandHandler(repo domain.DepartmentRepository, queries domain.DepartmentQueryRepository) *DepartmentCommandHandler {
	return &DepartmentCommandHandler{repo: repo, queries: queries}
}

// Create validates input, checks name and code uniqueness and persists
func (h *DepartmentCommandHandler) Create(ctx context.Context, cmd CreateDepartmentCommand) (*DepartmentDTO, error) {
	name, err := domain.NewDepartmentName(cmd.Name)
	if err != nil {
		return nil, err
	}
	code, err := domain.NewDepartmentCode(cmd.Code)
	if err != nil {
		return nil, err
	}
	description, err := domain.NewDescription(cmd.Description)
	if err != nil {
		return nil, err
	}

	exists, err := h.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("department with name %q already exists", name.String())
	}

	exists, err = h.repo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("department with code %q already exists", code.String())
	}

	department := domain.NewDepartment(name, code, description)
	if err := h.repo.Save(ctx, department); err != nil {
		return nil, err
	}
	return DepartmentView(department), nil
}

// UpdateDepartmentCommand carries the input for updating a department
type UpdateDepartmentCommand struct {
	ID          string
	Name        string
	Code        string
	Description string
}

// Update validates input, checks uniqueness excluding self and persists
func (h *DepartmentCommandHandler) Update(ctx context.Context, cmd UpdateDepartmentCommand) (*DepartmentDTO, error) {
	id, err := domain.ParseDepartmentID(cmd.ID)
	if err != nil {
		return nil, err
	}
	name, err := domain.NewDepartmentName(cmd.Name)
	if err != nil {
		return nil, err
	}
	code, err := domain.NewDepartmentCode(cmd.Code)
	if err != nil {
		return nil, err
	}
	description, err := domain.NewDescription(cmd.Description)
	if err != nil {
		return nil, err
	}

	department, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := h.repo.ExistsByNameExcludingID(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("department with name %q already exists", name.String())
	}

	exists, err = h.repo.ExistsByCodeExcludingID(ctx, code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("department with code %q already exists", code.String())
	}

	department.Update(name, code, description)
	if err := h.repo.Update(ctx, department); err != nil {
		return nil, err
	}
	return DepartmentView(department), nil
}

// Delete removes a department permanently
func (h *DepartmentCommandHandler) Delete(ctx context.Context, rawID string) error {
	id, err := domain.ParseDepartmentID(rawID)
	if err != nil {
		return err
	}
	return h.repo.Delete(ctx, id)
}

// Activate marks a department active
func (h *DepartmentCommandHandler) Activate(ctx context.Context, rawID string) (*DepartmentDTO, error) {
	id, err := domain.ParseDepartmentID(rawID)
	if err != nil {
		return nil, err
	}
	department, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	department.Activate()
	if err := h.repo.Update(ctx, department); err != nil {
		return nil, err
	}
	return DepartmentView(department), nil
}

// Deactivate marks a department inactive
func (h *DepartmentCommandHandler) Deactivate(ctx context.Context, rawID string) (*DepartmentDTO, error) {
	id, err := domain.ParseDepartmentID(rawID)
	if err != nil {
		return nil, err
	}
	department, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	department.Deactivate()
	if err := h.repo.Update(ctx, department); err != nil {
		return nil, err
	}
	return DepartmentView(department), nil
}
