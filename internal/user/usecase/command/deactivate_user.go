package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
)

// DeactivateUserCommand represents the command to deactivate a user account
type DeactivateUserCommand struct {
	UserID string
}

// DeactivateUserHandler handles account deactivation
type DeactivateUserHandler struct {
	repo    domain.UserRepository
	queries domain.UserQueryRepository
}

// NewDeactivateUserHandler creates a new deactivate user handler
func NewDeactivateUserHandler(repo domain.UserRepository, queries domain.UserQueryRepository) *DeactivateUserHandler {
	return &DeactivateUserHandler{repo: repo, queries: queries}
}

// Handle executes the deactivate user command
func (h *DeactivateUserHandler) Handle(ctx context.Context, cmd DeactivateUserCommand) (*UserDTO, error) {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	user, err := h.queries.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.Deactivate(); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	dto := userDTO(user)
	return &dto, nil
}
