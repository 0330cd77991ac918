package domain

import (
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

const maxTextLength = 500

// Description is optional free text attached to a master data record.
// The zero value means absent.
type Description struct {
	value string
}

func NewDescription(value string) (Description, error) {
	if value == "" {
		return Description{}, nil
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Description{}, apperrors.Validation("description must not be blank")
	}
	if len(trimmed) > maxTextLength {
		return Description{}, apperrors.Validation("description must not exceed %d characters", maxTextLength)
	}
	return Description{value: trimmed}, nil
}

func DescriptionFromString(value string) Description {
	return Description{value: value}
}

func (d Description) String() string { return d.value }
func (d Description) IsZero() bool   { return d.value == "" }

// Address is an optional postal address. The zero value means absent.
type Address struct {
	value string
}

func NewAddress(value string) (Address, error) {
	if value == "" {
		return Address{}, nil
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Address{}, apperrors.Validation("address must not be blank")
	}
	if len(trimmed) > maxTextLength {
		return Address{}, apperrors.Validation("address must not exceed %d characters", maxTextLength)
	}
	return Address{value: trimmed}, nil
}

func AddressFromString(value string) Address {
	return Address{value: value}
}

func (a Address) String() string { return a.value }
func (a Address) IsZero() bool   { return a.value == "" }
