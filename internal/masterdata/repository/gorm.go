package repository

import (
	"gorm.io/gorm"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
)

// applyFilter narrows a list query. Search matches the record name,
// case-insensitively.
func applyFilter(db *gorm.DB, filter domain.ListFilter) *gorm.DB {
	if filter.IsActive != nil {
		if *filter.IsActive {
			db = db.Where("status = ?", domain.StatusActive.String())
		} else {
			db = db.Where("status = ?", domain.StatusInactive.String())
		}
	}
	if filter.SearchTerm != "" {
		db = db.Where("name ILIKE ?", "%"+filter.SearchTerm+"%")
	}
	return db
}

func applyPaging(db *gorm.DB, filter domain.ListFilter) *gorm.DB {
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}
	return db
}

// AutoMigrate runs database migrations for the master data tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&categoryRecord{}, &departmentRecord{}, &vendorRecord{})
}
