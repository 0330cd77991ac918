package domain

import (
	"regexp"
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

var vendorEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// VendorEmail is an optional contact email, normalized to lower case.
// The zero value means absent.
type VendorEmail struct {
	value string
}

func NewVendorEmail(value string) (VendorEmail, error) {
	if value == "" {
		return VendorEmail{}, nil
	}
	email := strings.ToLower(strings.TrimSpace(value))
	if len(email) > 254 {
		return VendorEmail{}, apperrors.Validation("email must not exceed 254 characters")
	}
	if !vendorEmailPattern.MatchString(email) {
		return VendorEmail{}, apperrors.Validation("invalid email format")
	}
	return VendorEmail{value: email}, nil
}

func VendorEmailFromString(value string) VendorEmail {
	return VendorEmail{value: value}
}

func (e VendorEmail) String() string { return e.value }
func (e VendorEmail) IsZero() bool   { return e.value == "" }
