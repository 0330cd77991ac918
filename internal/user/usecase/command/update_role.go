package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
)

// UpdateRoleCommand represents the command to change a user's role
type UpdateRoleCommand struct {
	UserID string
	Role   string
}

// UpdateRoleHandler handles role updates
type UpdateRoleHandler struct {
	repo    domain.UserRepository
	queries domain.UserQueryRepository
}

// NewUpdateRoleHandler creates a new update role handler
func NewUpdateRoleHandler(repo domain.UserRepository, queries domain.UserQueryRepository) *UpdateRoleHandler {
	return &UpdateRoleHandler{repo: repo, queries: queries}
}

// Handle executes the update role command
func (h *UpdateRoleHandler) Handle(ctx context.Context, cmd UpdateRoleCommand) (*UserDTO, error) {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(cmd.Role)
	if err != nil {
		return nil, err
	}

	user, err := h.queries.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateRole(role); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	dto := userDTO(user)
	return &dto, nil
}
