package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// DeleteUserCommand represents the command to permanently delete a user
type DeleteUserCommand struct {
	UserID string
}

// DeleteUserHandler handles user deletion
type DeleteUserHandler struct {
	repo domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle executes the delete user command. The delete is hard.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return err
	}

	exists, err := h.repo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("user not found")
	}

	return h.repo.Delete(ctx, userID)
}
