package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
)

// ActivateUserCommand represents the command to activate a user account
type ActivateUserCommand struct {
	UserID string
}

// ActivateUserHandler handles account activation
type ActivateUserHandler struct {
	repo    domain.UserRepository
	queries domain.UserQueryRepository
}

// NewActivateUserHandler creates a new activate user handler
func NewActivateUserHandler(repo domain.UserRepository, queries domain.UserQueryRepository) *ActivateUserHandler {
	return &ActivateUserHandler{repo: repo, queries: queries}
}

// Handle executes the activate user command
func (h *ActivateUserHandler) Handle(ctx context.Context, cmd ActivateUserCommand) (*UserDTO, error) {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	user, err := h.queries.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.Activate(); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	dto := userDTO(user)
	return &dto, nil
}
