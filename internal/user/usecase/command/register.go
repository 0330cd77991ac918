package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
	"github.com/tair/expense-tracker/pkg/auth"
)

// RegisterCommand represents the command to register a new user
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Role     string // optional, defaults to STAFF
}

// RegisterHandler handles user registration
type RegisterHandler struct {
	repo   domain.UserRepository
	hasher auth.Hasher
	tokens auth.TokenService
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(repo domain.UserRepository, hasher auth.Hasher, tokens auth.TokenService) *RegisterHandler {
	return &RegisterHandler{repo: repo, hasher: hasher, tokens: tokens}
}

// Handle executes the register command. The email pre-check is advisory;
// Save translates the storage unique-constraint violation into the same
// conflict when two registrations race.
func (h *RegisterHandler) Handle(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	email, err := domain.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	name, err := domain.NewUserName(cmd.Name)
	if err != nil {
		return nil, err
	}

	role := domain.RoleStaff
	if cmd.Role != "" {
		role, err = domain.ParseRole(cmd.Role)
		if err != nil {
			return nil, err
		}
	}

	exists, err := h.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("email already exists")
	}

	// Policy gate runs before hashing, and only on the plaintext path.
	plain, err := domain.NewPlainPassword(cmd.Password)
	if err != nil {
		return nil, err
	}
	hashed, err := h.hasher.Hash(plain.String())
	if err != nil {
		return nil, err
	}
	passwordHash, err := domain.PasswordHashFromString(hashed)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return authResult(user, h.tokens)
}
