package domain

import (
	"regexp"
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

const (
	userNameMinLength = 2
	userNameMaxLength = 100
)

var (
	userNamePattern    = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	multiSpacePattern  = regexp.MustCompile(`\s+`)
	doubleSpacePattern = regexp.MustCompile(`\s{2,}`)
)

// UserName is a validated display name.
type UserName struct {
	value string
}

// NewUserName trims the input and collapses internal whitespace before
// validating.
func NewUserName(raw string) (UserName, error) {
	normalized := multiSpacePattern.ReplaceAllString(strings.TrimSpace(raw), " ")
	return newUserName(normalized)
}

// UserNameFromString validates without normalizing
func UserNameFromString(raw string) (UserName, error) {
	return newUserName(strings.TrimSpace(raw))
}

func newUserName(value string) (UserName, error) {
	if value == "" {
		return UserName{}, apperrors.Validation("name cannot be empty")
	}
	if len(value) < userNameMinLength {
		return UserName{}, apperrors.Validation("name must be at least %d characters long", userNameMinLength)
	}
	if len(value) > userNameMaxLength {
		return UserName{}, apperrors.Validation("name cannot exceed %d characters", userNameMaxLength)
	}
	if !userNamePattern.MatchString(value) {
		return UserName{}, apperrors.Validation("name can only contain letters, spaces, hyphens, and apostrophes")
	}
	if doubleSpacePattern.MatchString(value) {
		return UserName{}, apperrors.Validation("name cannot contain consecutive spaces")
	}
	return UserName{value: value}, nil
}

// String returns the name
func (n UserName) String() string {
	return n.value
}

// FirstName returns the first word of the name
func (n UserName) FirstName() string {
	return strings.SplitN(n.value, " ", 2)[0]
}

// LastName returns the last word, or empty for single-word names
func (n UserName) LastName() string {
	parts := strings.Split(n.value, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}

// Initials returns the uppercased first letters of the first and last words
func (n UserName) Initials() string {
	parts := strings.Split(n.value, " ")
	if len(parts) == 1 {
		return strings.ToUpper(parts[0][:1])
	}
	return strings.ToUpper(parts[0][:1] + parts[len(parts)-1][:1])
}

// Equals compares by value
func (n UserName) Equals(other UserName) bool {
	return n.value == other.value
}

// IsZero reports whether the name is unset
func (n UserName) IsZero() bool {
	return n.value == ""
}
