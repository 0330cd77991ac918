package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
	"github.com/tair/expense-tracker/pkg/auth"
)

// LoginCommand represents the command to log a user in
type LoginCommand struct {
	Email    string
	Password string
}

// LoginHandler handles user login
type LoginHandler struct {
	queries domain.UserQueryRepository
	hasher  auth.Hasher
	tokens  auth.TokenService
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(queries domain.UserQueryRepository, hasher auth.Hasher, tokens auth.TokenService) *LoginHandler {
	return &LoginHandler{queries: queries, hasher: hasher, tokens: tokens}
}

// Handle executes the login command. Unknown email and wrong password fail
// identically so the response never reveals which field was wrong.
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	email, err := domain.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.Authentication("invalid credentials")
	}

	user, err := h.queries.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.Authentication("invalid credentials")
		}
		return nil, err
	}

	if !user.CanLogin() {
		return nil, apperrors.Authentication("account is not active")
	}

	if !h.hasher.Verify(cmd.Password, user.PasswordHash().String()) {
		return nil, apperrors.Authentication("invalid credentials")
	}

	return authResult(user, h.tokens)
}
