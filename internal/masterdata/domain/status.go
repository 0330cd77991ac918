package domain

import (
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

// Status is the master data record state. Unlike user accounts there is no
// state machine: records flip freely between ACTIVE and INACTIVE.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func ParseStatus(value string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(value))) {
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	default:
		return "", apperrors.Validation("invalid status: %s, must be one of: ACTIVE, INACTIVE", value)
	}
}

func (s Status) String() string { return string(s) }

func (s Status) IsActive() bool { return s == StatusActive }
