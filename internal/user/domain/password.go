package domain

import (
	"regexp"
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 128
)

const passwordRequirements = "password must be 8-128 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character"

const specialChars = `!@#$%^&*(),.?":{}|<>`

// PlainPassword is a plaintext candidate that has passed the strength
// policy. It exists only between request parsing and hashing; the aggregate
// never stores one.
type PlainPassword struct {
	value string
}

// NewPlainPassword enforces the password policy. This is the only gate on
// password strength; it must run before hashing. The failure message lists
// every requirement rather than the one that failed.
func NewPlainPassword(raw string) (PlainPassword, error) {
	if raw == "" {
		return PlainPassword{}, apperrors.Validation("password is required")
	}
	if len(raw) < passwordMinLength || len(raw) > passwordMaxLength {
		return PlainPassword{}, apperrors.Validation(passwordRequirements)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return PlainPassword{}, apperrors.Validation(passwordRequirements)
	}

	return PlainPassword{value: raw}, nil
}

// String returns the plaintext. Callers hand this to the hasher and nothing
// else.
func (p PlainPassword) String() string {
	return p.value
}

var commonPasswordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`123456`),
	regexp.MustCompile(`(?i)password`),
	regexp.MustCompile(`(?i)qwerty`),
	regexp.MustCompile(`(?i)abc123`),
}

// hasRepeatedRun reports whether the value contains the same rune three or
// more times in a row. RE2 has no backreferences, so this is scanned by hand.
func hasRepeatedRun(value string) bool {
	var prev rune
	run := 0
	for _, r := range value {
		if r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// Strength scores the password as weak, medium or strong
func (p PlainPassword) Strength() string {
	score := 0
	if len(p.value) >= 12 {
		score++
	}
	if len(p.value) >= 16 {
		score++
	}
	// a valid password always has all four character classes
	score += 4

	common := hasRepeatedRun(p.value)
	for _, pattern := range commonPasswordPatterns {
		if pattern.MatchString(p.value) {
			common = true
			break
		}
	}
	if !common {
		score++
	}

	switch {
	case score >= 4:
		return "strong"
	case score >= 3:
		return "medium"
	default:
		return "weak"
	}
}

// PasswordHash is the opaque result of hashing a PlainPassword. It is a
// distinct type so a stored hash can never be re-validated or re-hashed as
// if it were a plaintext candidate.
type PasswordHash struct {
	value string
}

// PasswordHashFromString wraps an already-hashed value. No policy validation
// happens here: hashes routinely fail the plaintext charset and length rules.
func PasswordHashFromString(hash string) (PasswordHash, error) {
	if hash == "" {
		return PasswordHash{}, apperrors.Validation("password hash cannot be empty")
	}
	return PasswordHash{value: hash}, nil
}

// String returns the opaque hash
func (h PasswordHash) String() string {
	return h.value
}

// Equals compares hashes by value
func (h PasswordHash) Equals(other PasswordHash) bool {
	return h.value == other.value
}

// IsZero reports whether the hash is unset
func (h PasswordHash) IsZero() bool {
	return h.value == ""
}
