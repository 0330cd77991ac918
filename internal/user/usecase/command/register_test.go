package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
	"github.com/tair/expense-tracker/pkg/auth"
	"github.com/tair/expense-tracker/pkg/config"
)

func testTokens() auth.TokenService {
	return auth.NewJWTTokenService(config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: time.Hour,
	})
}

func existingUser(t *testing.T, email string, status domain.Status) *domain.User {
	t.Helper()
	name, err := domain.NewUserName("Existing User")
	require.NoError(t, err)
	addr, err := domain.NewEmail(email)
	require.NoError(t, err)
	hash, err := domain.PasswordHashFromString("hashed:SecurePass123!")
	require.NoError(t, err)

	user, err := domain.UserFromPersistence(
		domain.NewUserID(), name, addr, hash, domain.RoleStaff, status,
		time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return user
}

func TestRegisterHappyPath(t *testing.T) {
	store := newFakeUserStore()
	handler := NewRegisterHandler(store, fakeHasher{}, testTokens())

	result, err := handler.Handle(context.Background(), RegisterCommand{
		Name:     "Alice Smith",
		Email:    "Alice@Example.com",
		Password: "SecurePass123!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Equal(t, "STAFF", result.User.Role)
	assert.Equal(t, "ACTIVE", result.User.Status)
	assert.Equal(t, 1, store.saveCalls)
}

func TestRegisterExplicitRole(t *testing.T) {
	store := newFakeUserStore()
	handler := NewRegisterHandler(store, fakeHasher{}, testTokens())

	result, err := handler.Handle(context.Background(), RegisterCommand{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "SecurePass123!",
		Role:     "finance",
	})
	require.NoError(t, err)
	assert.Equal(t, "FINANCE", result.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore(existingUser(t, "alice@example.com", domain.StatusActive))
	handler := NewRegisterHandler(store, fakeHasher{}, testTokens())

	_, err := handler.Handle(context.Background(), RegisterCommand{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "SecurePass123!",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	// The pre-check fires before any write
	assert.Equal(t, 0, store.saveCalls)
}

func TestRegisterWeakPassword(t *testing.T) {
	store := newFakeUserStore()
	handler := NewRegisterHandler(store, fakeHasher{}, testTokens())

	_, err := handler.Handle(context.Background(), RegisterCommand{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "weak",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Equal(t, 0, store.saveCalls)
}

func TestRegisterInvalidRole(t *testing.T) {
	handler := NewRegisterHandler(newFakeUserStore(), fakeHasher{}, testTokens())

	_, err := handler.Handle(context.Background(), RegisterCommand{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "SecurePass123!",
		Role:     "OVERLORD",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
