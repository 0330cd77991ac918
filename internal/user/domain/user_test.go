package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHash(t *testing.T, raw string) PasswordHash {
	t.Helper()
	hash, err := PasswordHashFromString(raw)
	require.NoError(t, err)
	return hash
}

func testUser(t *testing.T, status Status) *User {
	t.Helper()
	name, err := NewUserName("Alice Smith")
	require.NoError(t, err)
	email, err := NewEmail("alice@example.com")
	require.NoError(t, err)

	user, err := UserFromPersistence(
		NewUserID(),
		name,
		email,
		mustHash(t, "$2a$12$hash"),
		RoleStaff,
		status,
		time.Now().UTC(),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return user
}

func TestNewUserStartsActive(t *testing.T) {
	name, _ := NewUserName("Alice Smith")
	email, _ := NewEmail("alice@example.com")

	user, err := NewUser(name, email, mustHash(t, "$2a$12$hash"), RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, user.Status())
	assert.False(t, user.ID().IsZero())
	assert.True(t, user.CanLogin())
}

func TestActivateFromPendingAndInactive(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusInactive} {
		user := testUser(t, status)
		require.NoError(t, user.Activate())
		assert.Equal(t, StatusActive, user.Status())
	}
}

func TestActivateFromSuspendedFails(t *testing.T) {
	// Suspension is terminal: there is no path back to ACTIVE
	user := testUser(t, StatusSuspended)
	err := user.Activate()
	require.Error(t, err)
	assert.Equal(t, StatusSuspended, user.Status())
}

func TestActivateWhileActiveFails(t *testing.T) {
	user := testUser(t, StatusActive)
	assert.Error(t, user.Activate())
}

func TestDeactivate(t *testing.T) {
	user := testUser(t, StatusActive)
	require.NoError(t, user.Deactivate())
	assert.Equal(t, StatusInactive, user.Status())

	err := user.Deactivate()
	require.Error(t, err)
	assert.Equal(t, "user is already inactive", err.Error())
}

func TestSuspendOnlyFromActive(t *testing.T) {
	user := testUser(t, StatusActive)
	require.NoError(t, user.Suspend())
	assert.Equal(t, StatusSuspended, user.Status())

	for _, status := range []Status{StatusPending, StatusInactive, StatusSuspended} {
		user := testUser(t, status)
		assert.Error(t, user.Suspend(), "status %s", status)
	}
}

func TestChangePassword(t *testing.T) {
	user := testUser(t, StatusActive)

	err := user.ChangePassword(mustHash(t, "$2a$12$hash"))
	require.Error(t, err, "same hash must be rejected")

	require.NoError(t, user.ChangePassword(mustHash(t, "$2a$12$newhash")))
	assert.Equal(t, "$2a$12$newhash", user.PasswordHash().String())
}

func TestChangePasswordBlockedWhenInactive(t *testing.T) {
	user := testUser(t, StatusInactive)
	err := user.ChangePassword(mustHash(t, "$2a$12$newhash"))
	assert.Error(t, err)
}

func TestUpdateRole(t *testing.T) {
	user := testUser(t, StatusActive)

	err := user.UpdateRole(RoleStaff)
	require.Error(t, err, "same role must be rejected")

	require.NoError(t, user.UpdateRole(RoleAdmin))
	assert.Equal(t, RoleAdmin, user.Role())
	assert.True(t, user.IsAdmin())
}

func TestUpdateProfile(t *testing.T) {
	user := testUser(t, StatusActive)

	name, _ := NewUserName("Bob Jones")
	email, _ := NewEmail("bob@example.com")
	user.UpdateProfile(name, email)

	assert.Equal(t, "Bob Jones", user.Name().String())
	assert.Equal(t, "bob@example.com", user.Email().String())
}
