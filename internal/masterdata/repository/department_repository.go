package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// GormDepartmentRepository implements both the write and read side for
// departments on GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new department repository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// Save persists a new department
func (r *GormDepartmentRepository) Save(ctx context.Context, department *domain.Department) error {
	record := recordFromDepartment(department)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("department with name %q already exists", department.Name().String())
		}
		return apperrors.Storage(err, "failed to save department")
	}
	return nil
}

// Update persists changes to an existing department
func (r *GormDepartmentRepository) Update(ctx context.Context, department *domain.Department) error {
	record := recordFromDepartment(department)
	result := r.db.WithContext(ctx).Model(&departmentRecord{}).Where("id = ?", record.ID).Updates(map[string]interface{}{
		"name":        record.Name,
		"code":        record.Code,
		"description": record.Description,
		"status":      record.Status,
		"updated_at":  record.UpdatedAt,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("department with name %q already exists", department.Name().String())
		}
		return apperrors.Storage(result.Error, "failed to update department")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("department not found")
	}
	return nil
}

// Delete removes a department permanently
func (r *GormDepartmentRepository) Delete(ctx context.Context, id domain.DepartmentID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&departmentRecord{})
	if result.Error != nil {
		return apperrors.Storage(result.Error, "failed to delete department")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("department not found")
	}
	return nil
}

// ExistsByName reports whether a department with the given name exists
func (r *GormDepartmentRepository) ExistsByName(ctx context.Context, name domain.DepartmentName) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&departmentRecord{}).Where("name = ?", name.String()).Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err, "failed to check department name")
	}
	return count > 0, nil
}

// ExistsByNameExcludingID reports whether another department holds the given name
func (r *GormDepartmentRepository) ExistsByNameExcludingID(ctx context.Context, name domain.DepartmentName, id domain.DepartmentID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&departmentRecord{}).
		Where("name = ? AND id <> ?", name.String(), id.String()).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err, "failed to check department name")
	}
	return count > 0, nil
}

// ExistsByCode reports whether a department with the given code exists
func (r *GormDepartmentRepository) ExistsByCode(ctx context.Context, code domain.DepartmentCode) (bool, error) {
	if code.IsZero() {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&departmentRecord{}).Where("code = ?", code.String()).Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err, "failed to check department code")
	}
	return count > 0, nil
}

// ExistsByCodeExcludingID reports whether another department holds the given code
func (r *GormDepartmentRepository) ExistsByCodeExcludingID(ctx context.Context, code domain.DepartmentCode, id domain.DepartmentID) (bool, error) {
	if code.IsZero() {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&departmentRecord{}).
		Where("code = ? AND id <> ?", code.String(), id.String()).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err, "failed to check department code")
	}
	return count > 0, nil
}

// FindByID retrieves a department by id
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id domain.DepartmentID) (*domain.Department, error) {
	var record departmentRecord
	err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("department not found")
		}
		return nil, apperrors.Storage(err, "failed to find department")
	}
	return record.toDomain()
}

// FindAll retrieves departments matching the filter
func (r *GormDepartmentRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]*domain.Department, error) {
	var records []departmentRecord
	db := applyFilter(r.db.WithContext(ctx).Model(&departmentRecord{}), filter)
	if err := applyPaging(db, filter).Order("name ASC").Find(&records).Error; err != nil {
		return nil, apperrors.Storage(err, "failed to list departments")
	}

	departments := make([]*domain.Department, 0, len(records))
	for i := range records {
		department, err := records[i].toDomain()
		if err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}
	return departments, nil
}

// Count returns the number of departments matching the filter
func (r *GormDepartmentRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	var count int64
	db := applyFilter(r.db.WithContext(ctx).Model(&departmentRecord{}), filter)
	if err := db.Count(&count).Error; err != nil {
		return 0, apperrors.Storage(err, "failed to count departments")
	}
	return count, nil
}
