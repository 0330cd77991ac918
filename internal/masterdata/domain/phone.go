package domain

import (
	"regexp"
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

var phoneSeparators = regexp.MustCompile(`[\s\-()]`)

// Phone is an optional contact number. Separators are tolerated on input
// but the stored value keeps the caller's formatting. The zero value
// means absent.
type Phone struct {
	value string
}

func NewPhone(value string) (Phone, error) {
	if value == "" {
		return Phone{}, nil
	}
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > 20 {
		return Phone{}, apperrors.Validation("phone number must not exceed 20 characters")
	}

	digits := phoneSeparators.ReplaceAllString(trimmed, "")
	digits = strings.TrimPrefix(digits, "+")
	if len(digits) < 10 || len(digits) > 15 {
		return Phone{}, apperrors.Validation("phone number must contain 10-15 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Phone{}, apperrors.Validation("phone number contains invalid characters")
		}
	}
	return Phone{value: trimmed}, nil
}

func PhoneFromString(value string) Phone {
	return Phone{value: value}
}

func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool   { return p.value == "" }
