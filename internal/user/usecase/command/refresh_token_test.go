package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
	"github.com/tair/expense-tracker/pkg/auth"
)

func TestRefreshTokenHappyPath(t *testing.T) {
	user := existingUser(t, "alice@example.com", domain.StatusActive)
	store := newFakeUserStore(user)
	tokens := testTokens()
	handler := NewRefreshTokenHandler(store, tokens)

	refresh, err := tokens.GenerateRefreshToken(user.ID().String())
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), RefreshTokenCommand{RefreshToken: refresh})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)

	claims, err := tokens.VerifyAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID().String(), claims.UserID)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	user := existingUser(t, "alice@example.com", domain.StatusActive)
	store := newFakeUserStore(user)
	tokens := testTokens()
	handler := NewRefreshTokenHandler(store, tokens)

	access, err := tokens.GenerateAccessToken(auth.Claims{
		UserID: user.ID().String(),
		Email:  user.Email().String(),
		Role:   user.Role().String(),
	})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), RefreshTokenCommand{RefreshToken: access})
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestRefreshTokenBlockedWhenNotActive(t *testing.T) {
	user := existingUser(t, "alice@example.com", domain.StatusSuspended)
	store := newFakeUserStore(user)
	tokens := testTokens()
	handler := NewRefreshTokenHandler(store, tokens)

	refresh, err := tokens.GenerateRefreshToken(user.ID().String())
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), RefreshTokenCommand{RefreshToken: refresh})
	require.Error(t, err)
	assert.Equal(t, "account is not active", apperrors.MessageOf(err))
}
