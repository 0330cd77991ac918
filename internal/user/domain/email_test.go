package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

func TestNewEmailNormalizes(t *testing.T) {
	email, err := NewEmail("  Alice@Example.COM  ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email.String())
}

func TestNewEmailRejectsInvalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"not-an-email",
		"missing@domain",
		"@example.com",
		"two words@example.com",
		"a@b@c.com",
	}
	for _, raw := range cases {
		_, err := NewEmail(raw)
		assert.Error(t, err, "input %q", raw)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	}
}

func TestNewEmailRejectsOverlong(t *testing.T) {
	long := strings.Repeat("a", 250) + "@example.com"
	_, err := NewEmail(long)
	assert.Error(t, err)
}

func TestEmailParts(t *testing.T) {
	email, err := NewEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", email.LocalPart())
	assert.Equal(t, "example.com", email.Domain())
}

func TestEmailFromStringSkipsNormalization(t *testing.T) {
	email, err := EmailFromString("Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice@Example.com", email.String())
}
