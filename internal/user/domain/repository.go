package domain

import "context"

// ListFilter narrows FindAll results. Zero values mean "no constraint".
type ListFilter struct {
	Limit      int
	Offset     int
	Role       *Role
	IsActive   *bool
	SearchTerm string
}

// CountFilter narrows Count results
type CountFilter struct {
	Role     *Role
	IsActive *bool
}

// UserRepository is the write-side contract. The application-level
// uniqueness pre-checks are advisory; Save and Update translate the storage
// engine's unique-constraint violation into a conflict error, and that is
// the authoritative duplicate signal.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id UserID) error
	ExistsByEmail(ctx context.Context, email Email) (bool, error)
	ExistsByID(ctx context.Context, id UserID) (bool, error)
}

// UserQueryRepository is the read-side contract. Find methods return a
// not-found error when no row matches.
type UserQueryRepository interface {
	FindByID(ctx context.Context, id UserID) (*User, error)
	FindByEmail(ctx context.Context, email Email) (*User, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*User, error)
	FindByRole(ctx context.Context, role Role, limit, offset int) ([]*User, error)
	FindActiveUsers(ctx context.Context, limit, offset int) ([]*User, error)
	SearchUsers(ctx context.Context, searchTerm string, limit, offset int) ([]*User, error)
	Count(ctx context.Context, filter CountFilter) (int64, error)
}
