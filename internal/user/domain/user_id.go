package domain

import (
	"github.com/google/uuid"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

// UserID is the opaque identity of a user. Generated once at registration,
// never changes, equality by value.
type UserID struct {
	value string
}

// NewUserID generates a random identity
func NewUserID() UserID {
	return UserID{value: uuid.NewString()}
}

// ParseUserID validates an identity received from outside. The shape check
// is loose: any UUID variant is accepted, not just v4.
func ParseUserID(raw string) (UserID, error) {
	if raw == "" {
		return UserID{}, apperrors.Validation("user id cannot be empty")
	}
	if _, err := uuid.Parse(raw); err != nil {
		return UserID{}, apperrors.Validation("user id must be a valid UUID")
	}
	return UserID{value: raw}, nil
}

// String returns the canonical form
func (id UserID) String() string {
	return id.value
}

// IsZero reports whether the id is unset
func (id UserID) IsZero() bool {
	return id.value == ""
}

// Equals compares by value
func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}
