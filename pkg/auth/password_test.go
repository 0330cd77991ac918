package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("SecurePass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "SecurePass123!", hash)

	assert.True(t, hasher.Verify("SecurePass123!", hash))
	assert.False(t, hasher.Verify("WrongPass123!", hash))
}

func TestBcryptHasherDistinctHashes(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("SecurePass123!")
	require.NoError(t, err)
	second, err := hasher.Hash("SecurePass123!")
	require.NoError(t, err)

	// Salted hashes never repeat
	assert.NotEqual(t, first, second)
}

func TestBcryptHasherCostClamped(t *testing.T) {
	hasher := NewBcryptHasher(100)

	hash, err := hasher.Hash("SecurePass123!")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("SecurePass123!", hash))
}
