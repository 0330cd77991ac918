package query

import (
	"context"
	"time"

	"github.com/tair/expense-tracker/internal/user/domain"
)

// UserView is the read-side projection of a user
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func viewFrom(user *domain.User) UserView {
	return UserView{
		ID:        user.ID().String(),
		Name:      user.Name().String(),
		Email:     user.Email().String(),
		Role:      user.Role().String(),
		Status:    user.Status().String(),
		IsActive:  user.IsActive(),
		CreatedAt: user.CreatedAt(),
		UpdatedAt: user.UpdatedAt(),
	}
}

// GetUserQuery represents the query to fetch one user
type GetUserQuery struct {
	ID string
}

// GetUserHandler handles the get user query
type GetUserHandler struct {
	queries domain.UserQueryRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(queries domain.UserQueryRepository) *GetUserHandler {
	return &GetUserHandler{queries: queries}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(ctx context.Context, q GetUserQuery) (*UserView, error) {
	id, err := domain.ParseUserID(q.ID)
	if err != nil {
		return nil, err
	}

	user, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := viewFrom(user)
	return &view, nil
}
