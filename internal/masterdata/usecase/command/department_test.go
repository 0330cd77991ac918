package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

func TestCreateDepartment(t *testing.T) {
	store := newFakeDepartmentStore()
	handler := NewDepartmentCommandHandler(store, store)

	dto, err := handler.Create(context.Background(), CreateDepartmentCommand{
		Name: "Engineering",
		Code: "eng-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", dto.Name)
	assert.Equal(t, "ENG-01", dto.Code)
}

func TestCreateDepartmentWithoutCode(t *testing.T) {
	store := newFakeDepartmentStore()
	handler := NewDepartmentCommandHandler(store, store)

	dto, err := handler.Create(context.Background(), CreateDepartmentCommand{Name: "Engineering"})
	require.NoError(t, err)
	assert.Empty(t, dto.Code)
}

func TestCreateDepartmentDuplicateCode(t *testing.T) {
	store := newFakeDepartmentStore()
	handler := NewDepartmentCommandHandler(store, store)

	_, err := handler.Create(context.Background(), CreateDepartmentCommand{
		Name: "Engineering",
		Code: "ENG-01",
	})
	require.NoError(t, err)

	_, err = handler.Create(context.Background(), CreateDepartmentCommand{
		Name: "Platform Engineering",
		Code: "eng-01",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.Equal(t, `department with code "ENG-01" already exists`, apperrors.MessageOf(err))
}

func TestCreateDepartmentDuplicateName(t *testing.T) {
	store := newFakeDepartmentStore()
	handler := NewDepartmentCommandHandler(store, store)

	_, err := handler.Create(context.Background(), CreateDepartmentCommand{Name: "Engineering"})
	require.NoError(t, err)

	_, err = handler.Create(context.Background(), CreateDepartmentCommand{Name: "Engineering"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestTwoDepartmentsWithoutCode(t *testing.T) {
	store := newFakeDepartmentStore()
	handler := NewDepartmentCommandHandler(store, store)

	_, err := handler.Create(context.Background(), CreateDepartmentCommand{Name: "Engineering"})
	require.NoError(t, err)

	// Absent codes never collide with each other
	_, err = handler.Create(context.Background(), CreateDepartmentCommand{Name: "Finance"})
	assert.NoError(t, err)
}
