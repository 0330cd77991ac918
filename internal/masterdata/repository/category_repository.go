package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// GormCategoryRepository implements both the write and read side for
// categories on GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new category repository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Save persists a new category
func (r *GormCategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	record := recordFromCategory(category)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("category with name %q already exists", category.Name().String())
		}
		return apperrors.Storage(err, "failed to save category")
	}
	return nil
}

// Update persists changes to an existing category
func (r *GormCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	record := recordFromCategory(category)
	result := r.db.WithContext(ctx).Model(&categoryRecord{}).Where("id = ?", record.ID).Updates(map[string]interface{}{
		"name":        record.Name,
		"description": record.Description,
		"status":      record.Status,
		"updated_at":  record.UpdatedAt,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("category with name %q already exists", category.Name().String())
		}
		return apperrors.Storage(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("category not found")
	}
	return nil
}

// Delete removes a category permanently
func (r *GormCategoryRepository) Delete(ctx context.Context, id domain.CategoryID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&categoryRecord{})
	if result.Error != nil {
		return apperrors.Storage(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("category not found")
	}
	return nil
}

// ExistsByName reports whether a category with the given name exists
func (r *GormCategoryRepository) ExistsByName(ctx context.Context, name domain.CategoryName) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&categoryRecord{}).Where("name = ?", name.String()).Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err, "failed to check category name")
	}
	return count > 0, nil
}

// ExistsByNameExcludingID reports whether another category holds the given name
func (r *GormCategoryRepository) ExistsByNameExcludingID(ctx context.Context, name domain.CategoryName, id domain.CategoryID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&categoryRecord{}).
		Where("name = ? AND id <> ?", name.String(), id.String()).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err, "failed to check category name")
	}
	return count > 0, nil
}

// FindByID retrieves a category by id
func (r *GormCategoryRepository) FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	var record categoryRecord
	err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category not found")
		}
		return nil, apperrors.Storage(err, "failed to find category")
	}
	return record.toDomain()
}

// FindAll retrieves categories matching the filter
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]*domain.Category, error) {
	var records []categoryRecord
	db := applyFilter(r.db.WithContext(ctx).Model(&categoryRecord{}), filter)
	if err := applyPaging(db, filter).Order("name ASC").Find(&records).Error; err != nil {
		return nil, apperrors.Storage(err, "failed to list categories")
	}

	categories := make([]*domain.Category, 0, len(records))
	for i := range records {
		category, err := records[i].toDomain()
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// Count returns the number of categories matching the filter
func (r *GormCategoryRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	var count int64
	db := applyFilter(r.db.WithContext(ctx).Model(&categoryRecord{}), filter)
	if err := db.Count(&count).Error; err != nil {
		return 0, apperrors.Storage(err, "failed to count categories")
	}
	return count, nil
}
