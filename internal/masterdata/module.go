package masterdata

import (
	"gorm.io/gorm"

	mdhttp "github.com/tair/expense-tracker/internal/masterdata/delivery/http"
	"github.com/tair/expense-tracker/internal/masterdata/repository"
	"github.com/tair/expense-tracker/internal/masterdata/usecase/command"
	"github.com/tair/expense-tracker/internal/masterdata/usecase/query"
)

// Module bundles the master data HTTP handler
type Module struct {
	Handler *mdhttp.MasterDataHandler
}

// NewModule wires the master data module
func NewModule(db *gorm.DB, mw mdhttp.AuthMiddleware) (*Module, error) {
	if err := repository.AutoMigrate(db); err != nil {
		return nil, err
	}

	categories := repository.NewGormCategoryRepository(db)
	departments := repository.NewGormDepartmentRepository(db)
	vendors := repository.NewGormVendorRepository(db)

	handler := mdhttp.NewMasterDataHandler(
		command.NewCategoryCommandHandler(categories, categories),
		command.NewDepartmentCommandHandler(departments, departments),
		command.NewVendorCommandHandler(vendors, vendors),
		query.NewCategoryQueryHandler(categories),
		query.NewDepartmentQueryHandler(departments),
		query.NewVendorQueryHandler(vendors),
		mw,
	)

	return &Module{Handler: handler}, nil
}
