package domain

import (
	"regexp"
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxEmailLength = 254

// Email is a validated, case-normalized address. It doubles as the natural
// uniqueness key for users.
type Email struct {
	value string
}

// NewEmail trims and lowercases the input before validating. Use this for
// anything arriving from a request.
func NewEmail(raw string) (Email, error) {
	return newEmail(strings.ToLower(strings.TrimSpace(raw)))
}

// EmailFromString validates without normalizing. Reconstruction from storage
// assumes the value was normalized when it was first created.
func EmailFromString(raw string) (Email, error) {
	return newEmail(raw)
}

func newEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, apperrors.Validation("email cannot be empty")
	}
	if len(value) > maxEmailLength {
		return Email{}, apperrors.Validation("email cannot exceed %d characters", maxEmailLength)
	}
	if !emailPattern.MatchString(value) {
		return Email{}, apperrors.Validation("invalid email format")
	}
	return Email{value: value}, nil
}

// String returns the address
func (e Email) String() string {
	return e.value
}

// LocalPart returns everything before the @
func (e Email) LocalPart() string {
	return e.value[:strings.LastIndex(e.value, "@")]
}

// Domain returns everything after the @
func (e Email) Domain() string {
	return e.value[strings.LastIndex(e.value, "@")+1:]
}

// Equals compares by value
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// IsZero reports whether the email is unset
func (e Email) IsZero() bool {
	return e.value == ""
}
