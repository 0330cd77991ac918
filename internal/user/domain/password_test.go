package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlainPasswordAcceptsStrong(t *testing.T) {
	p, err := NewPlainPassword("SecurePass123!")
	require.NoError(t, err)
	assert.Equal(t, "SecurePass123!", p.String())
}

func TestNewPlainPasswordRequired(t *testing.T) {
	_, err := NewPlainPassword("")
	require.Error(t, err)
	assert.Equal(t, "password is required", err.Error())
}

func TestNewPlainPasswordPolicyFailuresShareMessage(t *testing.T) {
	cases := map[string]string{
		"too short":    "Ab1!",
		"no uppercase": "securepass123!",
		"no lowercase": "SECUREPASS123!",
		"no digit":     "SecurePass!!!!",
		"no special":   "SecurePass1234",
		"too long":     "Aa1!" + strings.Repeat("x", 130),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewPlainPassword(raw)
			require.Error(t, err)
			// Policy failures never reveal which rule was broken
			assert.Equal(t, passwordRequirements, err.Error())
		})
	}
}

func TestPlainPasswordStrength(t *testing.T) {
	strong, err := NewPlainPassword("Xk9#mP2$vL5@qR8w")
	require.NoError(t, err)
	assert.Equal(t, "strong", strong.Strength())

	// Full character variety alone clears the strong threshold, so any
	// password that passes the policy rates strong
	short, err := NewPlainPassword("Secure1!")
	require.NoError(t, err)
	assert.Equal(t, "strong", short.Strength())
}

func TestHasRepeatedRun(t *testing.T) {
	assert.True(t, hasRepeatedRun("Xaaa1!bcde"))
	assert.True(t, hasRepeatedRun("!!!!"))
	assert.False(t, hasRepeatedRun("Xaab1!aabb"))
	assert.False(t, hasRepeatedRun(""))
}

func TestPlainPasswordStrengthPenalizesCommonContent(t *testing.T) {
	// Long passwords earn length bonuses, but a repeated run or a common
	// pattern forfeits the common-content point
	repeated, err := NewPlainPassword("Xk9#mP2$vLLL5@qR")
	require.NoError(t, err)
	assert.Equal(t, "strong", repeated.Strength())

	common, err := NewPlainPassword("Password123456!x")
	require.NoError(t, err)
	assert.Equal(t, "strong", common.Strength())
}

func TestPasswordHashFromStringSkipsPolicy(t *testing.T) {
	// Stored hashes never satisfy the plaintext policy and must not be
	// validated against it
	hash, err := PasswordHashFromString("$2a$12$abcdefghijklmnopqrstuv")
	require.NoError(t, err)
	assert.Equal(t, "$2a$12$abcdefghijklmnopqrstuv", hash.String())

	_, err = PasswordHashFromString("")
	assert.Error(t, err)
}
