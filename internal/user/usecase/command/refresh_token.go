package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
	"github.com/tair/expense-tracker/pkg/auth"
)

// RefreshTokenCommand represents the command to mint a new access token
type RefreshTokenCommand struct {
	RefreshToken string
}

// RefreshTokenResult carries the freshly minted access token. The refresh
// token is not rotated.
type RefreshTokenResult struct {
	AccessToken string `json:"access_token"`
}

// RefreshTokenHandler handles access token refresh
type RefreshTokenHandler struct {
	queries domain.UserQueryRepository
	tokens  auth.TokenService
}

// NewRefreshTokenHandler creates a new refresh token handler
func NewRefreshTokenHandler(queries domain.UserQueryRepository, tokens auth.TokenService) *RefreshTokenHandler {
	return &RefreshTokenHandler{queries: queries, tokens: tokens}
}

// Handle verifies the refresh token, re-checks login eligibility, and issues
// a new access token only.
func (h *RefreshTokenHandler) Handle(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	rawUserID, err := h.tokens.VerifyRefreshToken(cmd.RefreshToken)
	if err != nil {
		return nil, err
	}

	userID, err := domain.ParseUserID(rawUserID)
	if err != nil {
		return nil, err
	}

	user, err := h.queries.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.CanLogin() {
		return nil, apperrors.Authentication("account is not active")
	}

	accessToken, err := h.tokens.GenerateAccessToken(auth.Claims{
		UserID: user.ID().String(),
		Email:  user.Email().String(),
		Role:   user.Role().String(),
	})
	if err != nil {
		return nil, err
	}

	return &RefreshTokenResult{AccessToken: accessToken}, nil
}
