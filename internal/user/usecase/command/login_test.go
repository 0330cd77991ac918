package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

func TestLoginHappyPath(t *testing.T) {
	store := newFakeUserStore(existingUser(t, "alice@example.com", domain.StatusActive))
	handler := NewLoginHandler(store, fakeHasher{}, testTokens())

	result, err := handler.Handle(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "SecurePass123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "alice@example.com", result.User.Email)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	store := newFakeUserStore(existingUser(t, "alice@example.com", domain.StatusActive))
	handler := NewLoginHandler(store, fakeHasher{}, testTokens())

	// Unknown email and wrong password must produce the same error
	_, unknownErr := handler.Handle(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "SecurePass123!",
	})
	_, wrongErr := handler.Handle(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "WrongPass123!",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.True(t, apperrors.IsKind(unknownErr, apperrors.KindAuthentication))
	assert.True(t, apperrors.IsKind(wrongErr, apperrors.KindAuthentication))
}

func TestLoginBlockedForNonActiveStatuses(t *testing.T) {
	for _, status := range []domain.Status{domain.StatusInactive, domain.StatusSuspended, domain.StatusPending} {
		store := newFakeUserStore(existingUser(t, "alice@example.com", status))
		handler := NewLoginHandler(store, fakeHasher{}, testTokens())

		_, err := handler.Handle(context.Background(), LoginCommand{
			Email:    "alice@example.com",
			Password: "SecurePass123!",
		})
		require.Error(t, err, "status %s", status)
		assert.Equal(t, "account is not active", apperrors.MessageOf(err))
	}
}
