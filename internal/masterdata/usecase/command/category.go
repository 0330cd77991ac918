package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// CreateCategoryCommand carries the input for creating a category
type CreateCategoryCommand struct {
	Name        string
	Description string
}

// CategoryCommandHandler handles all category write operations
type CategoryCommandHandler struct {
	repo    domain.CategoryRepository
	queries domain.CategoryQueryRepository
}

// NewCategoryCommandHandler creates a new category command handler
func NewCategoryCommandHandler(repo domain.CategoryRepository, queries domain.CategoryQueryRepository) *CategoryCommandHandler {
	return &CategoryCommandHandler{repo: repo, queries: queries}
}

// Create validates input, checks name uniqueness and persists the category
func (h *CategoryCommandHandler) Create(ctx context.Context, cmd CreateCategoryCommand) (*CategoryDTO, error) {
	name, err := domain.NewCategoryName(cmd.Name)
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
		return nil, apperrors.Conflict("category with name %q already exists", name.String())
	}

	category := domain.NewCategory(name, description)
	if err := h.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return CategoryView(category), nil
}

// UpdateCategoryCommand carries the input for updating a category
type UpdateCategoryCommand struct {
	ID          string
	Name        string
	Description string
}

// Update validates input, checks uniqueness excluding self and persists
func (h *CategoryCommandHandler) Update(ctx context.Context, cmd UpdateCategoryCommand) (*CategoryDTO, error) {
	id, err := domain.ParseCategoryID(cmd.ID)
	if err != nil {
		return nil, err
	}
	name, err := domain.NewCategoryName(cmd.Name)
	if err != nil {
		return nil, err
	}
	description, err := domain.NewDescription(cmd.Description)
	if err != nil {
		return nil, err
	}

	category, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := h.repo.ExistsByNameExcludingID(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("category with name %q already exists", name.String())
	}

	category.Update(name, description)
	if err := h.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return CategoryView(category), nil
}

// Delete removes a category permanently
func (h *CategoryCommandHandler) Delete(ctx context.Context, rawID string) error {
	id, err := domain.ParseCategoryID(rawID)
	if err != nil {
		return err
	}
	return h.repo.Delete(ctx, id)
}

// Activate marks a category active
func (h *CategoryCommandHandler) Activate(ctx context.Context, rawID string) (*CategoryDTO, error) {
	id, err := domain.ParseCategoryID(rawID)
	if err != nil {
		return nil, err
	}
	category, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Activate()
	if err := h.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return CategoryView(category), nil
}

// Deactivate marks a category inactive
func (h *CategoryCommandHandler) Deactivate(ctx context.Context, rawID string) (*CategoryDTO, error) {
	id, err := domain.ParseCategoryID(rawID)
	if err != nil {
		return nil, err
	}
	category, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Deactivate()
	if err := h.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return CategoryView(category), nil
}
