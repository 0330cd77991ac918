package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

func seedCategory(t *testing.T, name string) *domain.Category {
	t.Helper()
	n, err := domain.NewCategoryName(name)
	require.NoError(t, err)
	return domain.NewCategory(n, domain.Description{})
}

func TestCreateCategory(t *testing.T) {
	store := newFakeCategoryStore()
	handler := NewCategoryCommandHandler(store, store)

	dto, err := handler.Create(context.Background(), CreateCategoryCommand{
		Name:        "  Travel  ",
		Description: "Team travel costs",
	})
	require.NoError(t, err)
	assert.Equal(t, "Travel", dto.Name)
	assert.Equal(t, "ACTIVE", dto.Status)
	assert.NotEmpty(t, dto.ID)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	store := newFakeCategoryStore(seedCategory(t, "Travel"))
	handler := NewCategoryCommandHandler(store, store)

	_, err := handler.Create(context.Background(), CreateCategoryCommand{Name: "Travel"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.Equal(t, `category with name "Travel" already exists`, apperrors.MessageOf(err))
	assert.Equal(t, 0, store.saveCalls)
}

func TestUpdateCategory(t *testing.T) {
	existing := seedCategory(t, "Travel")
	store := newFakeCategoryStore(existing)
	handler := NewCategoryCommandHandler(store, store)

	dto, err := handler.Update(context.Background(), UpdateCategoryCommand{
		ID:   existing.ID().String(),
		Name: "Transport",
	})
	require.NoError(t, err)
	assert.Equal(t, "Transport", dto.Name)
}

func TestUpdateCategoryKeepsOwnName(t *testing.T) {
	existing := seedCategory(t, "Travel")
	store := newFakeCategoryStore(existing)
	handler := NewCategoryCommandHandler(store, store)

	// Renaming to the current name must not conflict with itself
	_, err := handler.Update(context.Background(), UpdateCategoryCommand{
		ID:   existing.ID().String(),
		Name: "Travel",
	})
	assert.NoError(t, err)
}

func TestUpdateCategoryConflictsWithOther(t *testing.T) {
	first := seedCategory(t, "Travel")
	second := seedCategory(t, "Meals")
	store := newFakeCategoryStore(first, second)
	handler := NewCategoryCommandHandler(store, store)

	_, err := handler.Update(context.Background(), UpdateCategoryCommand{
		ID:   second.ID().String(),
		Name: "Travel",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestUpdateCategoryNotFound(t *testing.T) {
	store := newFakeCategoryStore()
	handler := NewCategoryCommandHandler(store, store)

	_, err := handler.Update(context.Background(), UpdateCategoryCommand{
		ID:   domain.NewCategoryID().String(),
		Name: "Travel",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestDeleteCategory(t *testing.T) {
	existing := seedCategory(t, "Travel")
	store := newFakeCategoryStore(existing)
	handler := NewCategoryCommandHandler(store, store)

	require.NoError(t, handler.Delete(context.Background(), existing.ID().String()))
	assert.True(t, apperrors.IsKind(handler.Delete(context.Background(), existing.ID().String()), apperrors.KindNotFound))
}

func TestActivateDeactivateCategory(t *testing.T) {
	existing := seedCategory(t, "Travel")
	store := newFakeCategoryStore(existing)
	handler := NewCategoryCommandHandler(store, store)

	dto, err := handler.Deactivate(context.Background(), existing.ID().String())
	require.NoError(t, err)
	assert.Equal(t, "INACTIVE", dto.Status)

	dto, err = handler.Activate(context.Background(), existing.ID().String())
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", dto.Status)
}

func TestCategoryInvalidID(t *testing.T) {
	store := newFakeCategoryStore()
	handler := NewCategoryCommandHandler(store, store)

	_, err := handler.Update(context.Background(), UpdateCategoryCommand{ID: "nope", Name: "Travel"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
