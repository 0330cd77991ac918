//go:build wireinject
// +build wireinject

package masterdata

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	mdhttp "github.com/tair/expense-tracker/internal/masterdata/delivery/http"
	"github.com/tair/expense-tracker/internal/masterdata/domain"
	"github.com/tair/expense-tracker/internal/masterdata/repository"
	"github.com/tair/expense-tracker/internal/masterdata/usecase/command"
	"github.com/tair/expense-tracker/internal/masterdata/usecase/query"
)

func ProvideCategoryRepository(db *gorm.DB) *repository.GormCategoryRepository {
	return repository.NewGormCategoryRepository(db)
}

func ProvideDepartmentRepository(db *gorm.DB) *repository.GormDepartmentRepository {
	return repository.NewGormDepartmentRepository(db)
}

func ProvideVendorRepository(db *gorm.DB) *repository.GormVendorRepository {
	return repository.NewGormVendorRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideCategoryRepository,
	wire.Bind(new(domain.CategoryRepository), new(*repository.GormCategoryRepository)),
	wire.Bind(new(domain.CategoryQueryRepository), new(*repository.GormCategoryRepository)),
	ProvideDepartmentRepository,
	wire.Bind(new(domain.DepartmentRepository), new(*repository.GormDepartmentRepository)),
	wire.Bind(new(domain.DepartmentQueryRepository), new(*repository.GormDepartmentRepository)),
	ProvideVendorRepository,
	wire.Bind(new(domain.VendorRepository), new(*repository.GormVendorRepository)),
	wire.Bind(new(domain.VendorQueryRepository), new(*repository.GormVendorRepository)),
)

var HandlerSet = wire.NewSet(
	command.NewCategoryCommandHandler,
	command.NewDepartmentCommandHandler,
	command.NewVendorCommandHandler,
	query.NewCategoryQueryHandler,
	query.NewDepartmentQueryHandler,
	query.NewVendorQueryHandler,
)

// InitializeHTTPHandler initializes the master data HTTP handler
func InitializeHTTPHandler(db *gorm.DB, mw mdhttp.AuthMiddleware) (*mdhttp.MasterDataHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		mdhttp.NewMasterDataHandler,
	)
	return nil, nil
}
