package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

func TestChangePasswordHappyPath(t *testing.T) {
	user := existingUser(t, "alice@example.com", domain.StatusActive)
	store := newFakeUserStore(user)
	handler := NewChangePasswordHandler(store, store, fakeHasher{})

	err := handler.Handle(context.Background(), ChangePasswordCommand{
		UserID:          user.ID().String(),
		CurrentPassword: "SecurePass123!",
		NewPassword:     "EvenBetter456$",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.updateCalls)
	assert.Equal(t, "hashed:EvenBetter456$", user.PasswordHash().String())
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	user := existingUser(t, "alice@example.com", domain.StatusActive)
	store := newFakeUserStore(user)
	handler := NewChangePasswordHandler(store, store, fakeHasher{})

	err := handler.Handle(context.Background(), ChangePasswordCommand{
		UserID:          user.ID().String(),
		CurrentPassword: "WrongPass123!",
		NewPassword:     "EvenBetter456$",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
	assert.Equal(t, "current password is incorrect", apperrors.MessageOf(err))
	assert.Equal(t, 0, store.updateCalls)
}

func TestChangePasswordWeakNew(t *testing.T) {
	user := existingUser(t, "alice@example.com", domain.StatusActive)
	store := newFakeUserStore(user)
	handler := NewChangePasswordHandler(store, store, fakeHasher{})

	err := handler.Handle(context.Background(), ChangePasswordCommand{
		UserID:          user.ID().String(),
		CurrentPassword: "SecurePass123!",
		NewPassword:     "weak",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestChangePasswordUnknownUser(t *testing.T) {
	store := newFakeUserStore()
	handler := NewChangePasswordHandler(store, store, fakeHasher{})

	err := handler.Handle(context.Background(), ChangePasswordCommand{
		UserID:          domain.NewUserID().String(),
		CurrentPassword: "SecurePass123!",
		NewPassword:     "EvenBetter456$",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
