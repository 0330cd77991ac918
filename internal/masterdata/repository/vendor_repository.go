package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// GormVendorRepository implements both the write and read side for
// vendors on GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new vendor repository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// Save persists a new vendor
func (r *GormVendorRepository) Save(ctx context.Context, vendor *domain.Vendor) error {
	record := recordFromVendor(vendor)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("vendor with name %q already exists", vendor.Name().String())
		}
		return apperrors.Storage(err, "failed to save vendor")
	}
	return nil
}

// Update persists changes to an existing vendor
func (r *GormVendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	record := recordFromVendor(vendor)
	result := r.db.WithContext(ctx).Model(&vendorRecord{}).Where("id = ?", record.ID).Updates(map[string]interface{}{
		"name":       record.Name,
		"gst_number": record.GSTNumber,
		"email":      record.Email,
		"phone":      record.Phone,
		"address":    record.Address,
		"status":     record.Status,
		"updated_at": record.UpdatedAt,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("vendor with name %q already exists", vendor.Name().String())
		}
		return apperrors.Storage(result.Error, "failed to update vendor")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("vendor not found")
	}
	return nil
}

// Delete removes a vendor permanently
func (r *GormVendorRepository) Delete(ctx context.Context, id domain.VendorID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&vendorRecord{})
	if result.Error != nil {
		return apperrors.Storage(result.Error, "failed to delete vendor")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("vendor not found")
	}
	return nil
}

// ExistsByName reports whether a vendor with the given name exists
func (r *GormVendorRepository) ExistsByName(ctx context.Context, name domain.VendorName) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&vendorRecord{}).Where("name = ?", name.String()).Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err, "failed to check vendor name")
	}
	return count > 0, nil
}

// ExistsByNameExcludingID reports whether another vendor holds the given name
func (r *GormVendorRepository) ExistsByNameExcludingID(ctx context.Context, name domain.VendorName, id domain.VendorID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&vendorRecord{}).
		Where("name = ? AND id <> ?", name.String(), id.String()).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err, "failed to check vendor name")
	}
	return count > 0, nil
}

// ExistsByEmail reports whether a vendor with the given email exists
func (r *GormVendorRepository) ExistsByEmail(ctx context.Context, email domain.VendorEmail) (bool, error) {
	if email.IsZero() {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&vendorRecord{}).Where("email = ?", email.String()).Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err, "failed to check vendor email")
	}
	return count > 0, nil
}

// ExistsByEmailExcludingID reports whether another vendor holds the given email
func (r *GormVendorRepository) ExistsByEmailExcludingID(ctx context.Context, email domain.VendorEmail, id domain.VendorID) (bool, error) {
	if email.IsZero() {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&vendorRecord{}).
		Where("email = ? AND id <> ?", email.String(), id.String()).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err, "failed to check vendor email")
	}
	return count > 0, nil
}

// FindByID retrieves a vendor by id
func (r *GormVendorRepository) FindByID(ctx context.Context, id domain.VendorID) (*domain.Vendor, error) {
	var record vendorRecord
	err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("vendor not found")
		}
		return nil, apperrors.Storage(err, "failed to find vendor")
	}
	return record.toDomain()
}

// FindAll retrieves vendors matching the filter
func (r *GormVendorRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]*domain.Vendor, error) {
	var records []vendorRecord
	db := applyFilter(r.db.WithContext(ctx).Model(&vendorRecord{}), filter)
	if err := applyPaging(db, filter).Order("name ASC").Find(&records).Error; err != nil {
		return nil, apperrors.Storage(err, "failed to list vendors")
	}

	vendors := make([]*domain.Vendor, 0, len(records))
	for i := range records {
		vendor, err := records[i].toDomain()
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, vendor)
	}
	return vendors, nil
}

// Count returns the number of vendors matching the filter
func (r *GormVendorRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	var count int64
	db := applyFilter(r.db.WithContext(ctx).Model(&vendorRecord{}), filter)
	if err := db.Count(&count).Error; err != nil {
		return 0, apperrors.Storage(err, "failed to count vendors")
	}
	return count, nil
}
