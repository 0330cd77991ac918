package user

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/tair/expense-tracker/internal/user/delivery/http"
	"github.com/tair/expense-tracker/internal/user/repository"
	"github.com/tair/expense-tracker/internal/user/usecase/command"
	"github.com/tair/expense-tracker/internal/user/usecase/query"
	"github.com/tair/expense-tracker/pkg/auth"
	"github.com/tair/expense-tracker/pkg/config"
)

// Module bundles the user module's HTTP handler with the pieces the
// server needs to share with other modules.
type Module struct {
	Handler    *http.UserHandler
	Middleware *http.Middleware
	Tokens     auth.TokenService
}

// NewModule wires the user module. publisher may be nil when event
// publishing is disabled.
func NewModule(db *gorm.DB, sqlDB *sql.DB, cfg config.Config, publisher http.EventPublisher) (*Module, error) {
	gormRepo := repository.NewGormUserRepository(db)
	if err := gormRepo.AutoMigrate(); err != nil {
		return nil, err
	}

	writeRepo := repository.NewTracingUserRepository(gormRepo)
	readRepo := repository.NewPostgresUserQueryRepository(sqlDB)

	hasher := auth.NewBcryptHasher(cfg.Bcrypt.Cost)
	tokens := auth.NewJWTTokenService(cfg.JWT)

	commands := http.CommandHandlers{
		Register:       command.NewRegisterHandler(writeRepo, hasher, tokens),
		Login:          command.NewLoginHandler(readRepo, hasher, tokens),
		RefreshToken:   command.NewRefreshTokenHandler(readRepo, tokens),
		ChangePassword: command.NewChangePasswordHandler(writeRepo, readRepo, hasher),
		UpdateProfile:  command.NewUpdateProfileHandler(writeRepo, readRepo),
		UpdateRole:     command.NewUpdateRoleHandler(writeRepo, readRepo),
		ActivateUser:   command.NewActivateUserHandler(writeRepo, readRepo),
		DeactivateUser: command.NewDeactivateUserHandler(writeRepo, readRepo),
		SuspendUser:    command.NewSuspendUserHandler(writeRepo, readRepo),
		DeleteUser:     command.NewDeleteUserHandler(writeRepo),
	}

	queries := http.QueryHandlers{
		GetUser:   query.NewGetUserHandler(readRepo),
		ListUsers: query.NewListUsersHandler(readRepo),
	}

	mw := http.NewMiddleware(tokens)

	return &Module{
		Handler:    http.NewUserHandler(commands, queries, mw, publisher),
		Middleware: mw,
		Tokens:     tokens,
	}, nil
}
