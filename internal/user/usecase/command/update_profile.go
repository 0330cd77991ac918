package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// UpdateProfileCommand represents the command to update name and email
type UpdateProfileCommand struct {
	UserID string
	Name   string
	Email  string
}

// UpdateProfileHandler handles profile updates
type UpdateProfileHandler struct {
	repo    domain.UserRepository
	queries domain.UserQueryRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository, queries domain.UserQueryRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo, queries: queries}
}

// Handle updates the user's name and email. When the email changes, its
// uniqueness is re-checked.
func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*UserDTO, error) {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}
	name, err := domain.NewUserName(cmd.Name)
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}

	user, err := h.queries.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.Email().Equals(email) {
		exists, err := h.repo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.Conflict("email already exists")
		}
	}

	user.UpdateProfile(name, email)

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	dto := userDTO(user)
	return &dto, nil
}
