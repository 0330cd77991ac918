package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
)

// SuspendUserCommand represents the command to suspend a user account
type SuspendUserCommand struct {
	UserID string
}

// SuspendUserHandler handles account suspension
type SuspendUserHandler struct {
	repo    domain.UserRepository
	queries domain.UserQueryRepository
}

// NewSuspendUserHandler creates a new suspend user handler
func NewSuspendUserHandler(repo domain.UserRepository, queries domain.UserQueryRepository) *SuspendUserHandler {
	return &SuspendUserHandler{repo: repo, queries: queries}
}

// Handle executes the suspend user command. Suspension is legal only from
// ACTIVE, and there is no unsuspend; only time or an admin data fix ends it.
func (h *SuspendUserHandler) Handle(ctx context.Context, cmd SuspendUserCommand) (*UserDTO, error) {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	user, err := h.queries.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.Suspend(); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	dto := userDTO(user)
	return &dto, nil
}
