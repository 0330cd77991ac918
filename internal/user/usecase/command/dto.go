package command

import (
	"time"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/auth"
)

// UserDTO is the outward-facing projection of a user
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResult carries freshly minted tokens alongside the user
type AuthResult struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

func userDTO(user *domain.User) UserDTO {
	return UserDTO{
		ID:        user.ID().String(),
		Name:      user.Name().String(),
		Email:     user.Email().String(),
		Role:      user.Role().String(),
		Status:    user.Status().String(),
		CreatedAt: user.CreatedAt(),
		UpdatedAt: user.UpdatedAt(),
	}
}

func authResult(user *domain.User, tokens auth.TokenService) (*AuthResult, error) {
	accessToken, err := tokens.GenerateAccessToken(auth.Claims{
		UserID: user.ID().String(),
		Email:  user.Email().String(),
		Role:   user.Role().String(),
	})
	if err != nil {
		return nil, err
	}
	refreshToken, err := tokens.GenerateRefreshToken(user.ID().String())
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         userDTO(user),
	}, nil
}
