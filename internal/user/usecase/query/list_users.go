package query

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
)

// ListUsersQuery represents the query to list users with filtering
type ListUsersQuery struct {
	Limit      int
	Offset     int
	Role       string
	IsActive   *bool
	SearchTerm string
}

// ListUsersResult carries the page of users plus the unpaged total
type ListUsersResult struct {
	Users []UserView `json:"users"`
	Total int64      `json:"total"`
}

// ListUsersHandler handles the list users query
type ListUsersHandler struct {
	queries domain.UserQueryRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(queries domain.UserQueryRepository) *ListUsersHandler {
	return &ListUsersHandler{queries: queries}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
	filter := domain.ListFilter{
		Limit:      q.Limit,
		Offset:     q.Offset,
		IsActive:   q.IsActive,
		SearchTerm: q.SearchTerm,
	}
	if q.Role != "" {
		role, err := domain.ParseRole(q.Role)
		if err != nil {
			return nil, err
		}
		filter.Role = &role
	}

	users, err := h.queries.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := h.queries.Count(ctx, domain.CountFilter{
		Role:     filter.Role,
		IsActive: q.IsActive,
	})
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, viewFrom(user))
	}

	return &ListUsersResult{Users: views, Total: total}, nil
}
