package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/expense-tracker/pkg/apperrors"
	"github.com/tair/expense-tracker/pkg/config"
)

func testTokenService() *JWTTokenService {
	return NewJWTTokenService(config.JWTConfig{
		Secret:             "test-secret-key",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testTokenService()

	token, err := svc.GenerateAccessToken(Claims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Role:   "ADMIN",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := testTokenService()

	token, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenCrossUseRejected(t *testing.T) {
	svc := testTokenService()

	access, err := svc.GenerateAccessToken(Claims{UserID: "user-1"})
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.VerifyRefreshToken(access)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))

	_, err = svc.VerifyAccessToken(refresh)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := testTokenService()

	token, err := svc.GenerateAccessToken(Claims{UserID: "user-1"})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.VerifyAccessToken(tampered)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := testTokenService().GenerateAccessToken(Claims{UserID: "user-1"})
	require.NoError(t, err)

	other := NewJWTTokenService(config.JWTConfig{
		Secret:             "different-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: time.Hour,
	})
	_, err = other.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTTokenService(config.JWTConfig{
		Secret:             "test-secret-key",
		AccessTokenExpiry:  -time.Minute,
		RefreshTokenExpiry: -time.Minute,
	})

	token, err := svc.GenerateAccessToken(Claims{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}
