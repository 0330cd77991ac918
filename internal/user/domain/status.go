package domain

import (
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

// Status is the account lifecycle state. Only ACTIVE permits login.
// SUSPENDED has no outgoing transition: activate() rejects it, and there is
// no unsuspend operation.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusPending   Status = "PENDING"
)

var validStatuses = map[Status]struct{}{
	StatusActive:    {},
	StatusInactive:  {},
	StatusSuspended: {},
	StatusPending:   {},
}

// ParseStatus accepts a status case-insensitively and rejects unknown values
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return "", apperrors.Validation("status cannot be empty")
	}
	status := Status(strings.ToUpper(raw))
	if _, ok := validStatuses[status]; !ok {
		return "", apperrors.Validation("invalid status: %s, must be one of: ACTIVE, INACTIVE, SUSPENDED, PENDING", raw)
	}
	return status, nil
}

// String returns the canonical uppercase form
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the known values
func (s Status) IsValid() bool {
	_, ok := validStatuses[s]
	return ok
}

// CanLogin reports whether an account in this state may authenticate
func (s Status) CanLogin() bool {
	return s == StatusActive
}

// CanBeActivated reports whether activate() is legal from this state
func (s Status) CanBeActivated() bool {
	return s == StatusPending || s == StatusInactive
}

// CanBeSuspended reports whether suspend() is legal from this state
func (s Status) CanBeSuspended() bool {
	return s == StatusActive
}
