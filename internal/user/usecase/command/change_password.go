package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
	"github.com/tair/expense-tracker/pkg/auth"
)

// ChangePasswordCommand represents the command to change the caller's password
type ChangePasswordCommand struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordHandler handles password changes
type ChangePasswordHandler struct {
	repo    domain.UserRepository
	queries domain.UserQueryRepository
	hasher  auth.Hasher
}

// NewChangePasswordHandler creates a new change password handler
func NewChangePasswordHandler(repo domain.UserRepository, queries domain.UserQueryRepository, hasher auth.Hasher) *ChangePasswordHandler {
	return &ChangePasswordHandler{repo: repo, queries: queries, hasher: hasher}
}

// Handle verifies the current password, re-validates policy on the new one,
// and persists the new hash.
func (h *ChangePasswordHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return err
	}

	user, err := h.queries.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !h.hasher.Verify(cmd.CurrentPassword, user.PasswordHash().String()) {
		return apperrors.Authentication("current password is incorrect")
	}

	plain, err := domain.NewPlainPassword(cmd.NewPassword)
	if err != nil {
		return err
	}
	hashed, err := h.hasher.Hash(plain.String())
	if err != nil {
		return err
	}
	newHash, err := domain.PasswordHashFromString(hashed)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(newHash); err != nil {
		return err
	}

	return h.repo.Update(ctx, user)
}
