package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// GormUserRepository implements the write-side UserRepository with GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Save inserts a new user. A unique-constraint violation on email is
// reported as a conflict.
func (r *GormUserRepository) Save(ctx context.Context, user *domain.User) error {
	record := recordFromUser(user)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("email already exists")
		}
		return apperrors.Storage(err, "failed to create user")
	}
	return nil
}

// Update persists the current state of an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *domain.User) error {
	record := recordFromUser(user)
	result := r.db.WithContext(ctx).Model(&userRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"name":          record.Name,
			"email":         record.Email,
			"password_hash": record.PasswordHash,
			"role":          record.Role,
			"status":        record.Status,
			"updated_at":    record.UpdatedAt,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("email already exists")
		}
		return apperrors.Storage(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("user not found")
	}
	return nil
}

// Delete removes a user permanently. Deletion is hard, not soft.
func (r *GormUserRepository) Delete(ctx context.Context, id domain.UserID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&userRecord{})
	if result.Error != nil {
		return apperrors.Storage(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("user not found")
	}
	return nil
}

// ExistsByEmail reports whether a user with the email exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&userRecord{}).
		Where("email = ?", email.String()).
		Count(&count).Error; err != nil {
		return false, apperrors.Storage(err, "failed to check email existence")
	}
	return count > 0, nil
}

// ExistsByID reports whether a user with the id exists
func (r *GormUserRepository) ExistsByID(ctx context.Context, id domain.UserID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&userRecord{}).
		Where("id = ?", id.String()).
		Count(&count).Error; err != nil {
		return false, apperrors.Storage(err, "failed to check user existence")
	}
	return count > 0, nil
}

// AutoMigrate runs database migrations for the users table
func (r *GormUserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&userRecord{})
}
