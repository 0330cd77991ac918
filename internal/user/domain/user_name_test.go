package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserNameNormalizes(t *testing.T) {
	name, err := NewUserName("  Alice   Marie   Smith  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice Marie Smith", name.String())
}

func TestNewUserNameRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty":    "",
		"blank":    "   ",
		"single":   "A",
		"overlong": strings.Repeat("a", 101),
		"digits":   "Alice123",
		"symbols":  "Alice@Smith",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewUserName(raw)
			assert.Error(t, err)
		})
	}
}

func TestNewUserNameAllowsApostropheAndHyphen(t *testing.T) {
	name, err := NewUserName("Mary-Jane O'Brien")
	require.NoError(t, err)
	assert.Equal(t, "Mary-Jane O'Brien", name.String())
}

func TestUserNameParts(t *testing.T) {
	name, err := NewUserName("Alice Marie Smith")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name.FirstName())
	assert.Equal(t, "Smith", name.LastName())
	assert.Equal(t, "AS", name.Initials())
}

func TestUserNamePartsSingleWord(t *testing.T) {
	name, err := NewUserName("Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name.FirstName())
	assert.Equal(t, "", name.LastName())
	assert.Equal(t, "A", name.Initials())
}
