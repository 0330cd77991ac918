//go:build wireinject
// +build wireinject

package user

import (
	"database/sql"

	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/expense-tracker/internal/user/delivery/http"
	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/internal/user/repository"
	"github.com/tair/expense-tracker/internal/user/usecase/command"
	"github.com/tair/expense-tracker/internal/user/usecase/query"
	"github.com/tair/expense-tracker/pkg/auth"
	"github.com/tair/expense-tracker/pkg/config"
)

// ProvideUserRepository provides the write-side repository wrapped with tracing
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewTracingUserRepository(repository.NewGormUserRepository(db))
}

// ProvideUserQueryRepository provides the read-side repository
func ProvideUserQueryRepository(db *sql.DB) domain.UserQueryRepository {
	return repository.NewPostgresUserQueryRepository(db)
}

// ProvideHasher provides the password hasher
func ProvideHasher(cfg config.Config) auth.Hasher {
	return auth.NewBcryptHasher(cfg.Bcrypt.Cost)
}

// ProvideTokenService provides the JWT token service
func ProvideTokenService(cfg config.Config) auth.TokenService {
	return auth.NewJWTTokenService(cfg.JWT)
}

// Command Handlers Providers
func ProvideRegisterHandler(repo domain.UserRepository, hasher auth.Hasher, tokens auth.TokenService) *command.RegisterHandler {
	return command.NewRegisterHandler(repo, hasher, tokens)
}

func ProvideLoginHandler(queries domain.UserQueryRepository, hasher auth.Hasher, tokens auth.TokenService) *command.LoginHandler {
	return command.NewLoginHandler(queries, hasher, tokens)
}

func ProvideRefreshTokenHandler(queries domain.UserQueryRepository, tokens auth.TokenService) *command.RefreshTokenHandler {
	return command.NewRefreshTokenHandler(queries, tokens)
}

func ProvideChangePasswordHandler(repo domain.UserRepository, queries domain.UserQueryRepository, hasher auth.Hasher) *command.ChangePasswordHandler {
	return command.NewChangePasswordHandler(repo, queries, hasher)
}

func ProvideUpdateProfileHandler(repo domain.UserRepository, queries domain.UserQueryRepository) *command.UpdateProfileHandler {
	return command.NewUpdateProfileHandler(repo, queries)
}

func ProvideUpdateRoleHandler(repo domain.UserRepository, queries domain.UserQueryRepository) *command.UpdateRoleHandler {
	return command.NewUpdateRoleHandler(repo, queries)
}

func ProvideActivateUserHandler(repo domain.UserRepository, queries domain.UserQueryRepository) *command.ActivateUserHandler {
	return command.NewActivateUserHandler(repo, queries)
}

func ProvideDeactivateUserHandler(repo domain.UserRepository, queries domain.UserQueryRepository) *command.DeactivateUserHandler {
	return command.NewDeactivateUserHandler(repo, queries)
}

func ProvideSuspendUserHandler(repo domain.UserRepository, queries domain.UserQueryRepository) *command.SuspendUserHandler {
	return command.NewSuspendUserHandler(repo, queries)
}

func ProvideDeleteUserHandler(repo domain.UserRepository) *command.DeleteUserHandler {
	return command.NewDeleteUserHandler(repo)
}

// Query Handlers Providers
func ProvideGetUserHandler(queries domain.UserQueryRepository) *query.GetUserHandler {
	return query.NewGetUserHandler(queries)
}

func ProvideListUsersHandler(queries domain.UserQueryRepository) *query.ListUsersHandler {
	return query.NewListUsersHandler(queries)
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	register *command.RegisterHandler,
	login *command.LoginHandler,
	refreshToken *command.RefreshTokenHandler,
	changePassword *command.ChangePasswordHandler,
	updateProfile *command.UpdateProfileHandler,
	updateRole *command.UpdateRoleHandler,
	activateUser *command.ActivateUserHandler,
	deactivateUser *command.DeactivateUserHandler,
	suspendUser *command.SuspendUserHandler,
	deleteUser *command.DeleteUserHandler,
) http.CommandHandlers {
	return http.CommandHandlers{
		Register:       register,
		Login:          login,
		RefreshToken:   refreshToken,
		ChangePassword: changePassword,
		UpdateProfile:  updateProfile,
		UpdateRole:     updateRole,
		ActivateUser:   activateUser,
		DeactivateUser: deactivateUser,
		SuspendUser:    suspendUser,
		DeleteUser:     deleteUser,
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(
	getUser *query.GetUserHandler,
	listUsers *query.ListUsersHandler,
) http.QueryHandlers {
	return http.QueryHandlers{
		GetUser:   getUser,
		ListUsers: listUsers,
	}
}

// ProvideMiddleware provides the auth middleware
func ProvideMiddleware(tokens auth.TokenService) *http.Middleware {
	return http.NewMiddleware(tokens)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideUserQueryRepository,
)

var AuthSet = wire.NewSet(
	ProvideHasher,
	ProvideTokenService,
)

var CommandHandlerSet = wire.NewSet(
	ProvideRegisterHandler,
	ProvideLoginHandler,
	ProvideRefreshTokenHandler,
	ProvideChangePasswordHandler,
	ProvideUpdateProfileHandler,
	ProvideUpdateRoleHandler,
	ProvideActivateUserHandler,
	ProvideDeactivateUserHandler,
	ProvideSuspendUserHandler,
	ProvideDeleteUserHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetUserHandler,
	ProvideListUsersHandler,
	ProvideQueryHandlers,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	AuthSet,
	CommandHandlerSet,
	QueryHandlerSet,
	ProvideMiddleware,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, sqlDB *sql.DB, cfg config.Config, publisher http.EventPublisher) (*http.UserHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewUserHandler,
	)
	return nil, nil
}
