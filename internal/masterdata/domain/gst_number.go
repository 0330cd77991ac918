package domain

import (
	"regexp"
	"strings"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

// Indian GST identification number format.
var gstPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// GSTNumber is an optional tax registration number, uppercased on creation.
// The zero value means absent.
type GSTNumber struct {
	value string
}

func NewGSTNumber(value string) (GSTNumber, error) {
	if value == "" {
		return GSTNumber{}, nil
	}
	gst := strings.ToUpper(strings.TrimSpace(value))
	if !gstPattern.MatchString(gst) {
		return GSTNumber{}, apperrors.Validation("invalid GST number format")
	}
	return GSTNumber{value: gst}, nil
}

func GSTNumberFromString(value string) GSTNumber {
	return GSTNumber{value: value}
}

func (g GSTNumber) String() string { return g.value }
func (g GSTNumber) IsZero() bool   { return g.value == "" }
