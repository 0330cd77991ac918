package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tair/expense-tracker/pkg/apperrors"
	"github.com/tair/expense-tracker/pkg/config"
)

// Claims is the payload carried by an access token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenService issues and verifies the two token kinds. Access tokens carry
// full claims and a short expiry; refresh tokens carry only the user id and
// a longer expiry. Tokens are stateless: there is no revocation list, and
// refresh tokens are not rotated.
type TokenService interface {
	GenerateAccessToken(claims Claims) (string, error)
	VerifyAccessToken(token string) (*Claims, error)
	GenerateRefreshToken(userID string) (string, error)
	VerifyRefreshToken(token string) (string, error)
}

const (
	tokenUseAccess  = "access"
	tokenUseRefresh = "refresh"
)

type jwtClaims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	TokenUse string `json:"token_use"`
	jwt.RegisteredClaims
}

// JWTTokenService signs tokens with HMAC-SHA256.
type JWTTokenService struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTTokenService creates a token service from config
func NewJWTTokenService(cfg config.JWTConfig) *JWTTokenService {
	return &JWTTokenService{
		secret:        []byte(cfg.Secret),
		accessExpiry:  cfg.AccessTokenExpiry,
		refreshExpiry: cfg.RefreshTokenExpiry,
	}
}

// GenerateAccessToken issues a short-lived token carrying the full claims
func (s *JWTTokenService) GenerateAccessToken(claims Claims) (string, error) {
	return s.sign(jwtClaims{
		UserID:   claims.UserID,
		Email:    claims.Email,
		Role:     claims.Role,
		TokenUse: tokenUseAccess,
	}, s.accessExpiry)
}

// VerifyAccessToken parses and validates an access token. Expired, malformed
// and tampered tokens all collapse to one authentication error; the raw
// cause is retained on the wrapped error for logging.
func (s *JWTTokenService) VerifyAccessToken(token string) (*Claims, error) {
	parsed, err := s.verify(token, tokenUseAccess)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindAuthentication, err, "invalid or expired access token")
	}
	return &Claims{UserID: parsed.UserID, Email: parsed.Email, Role: parsed.Role}, nil
}

// GenerateRefreshToken issues a longer-lived token carrying only the user id
func (s *JWTTokenService) GenerateRefreshToken(userID string) (string, error) {
	return s.sign(jwtClaims{
		UserID:   userID,
		TokenUse: tokenUseRefresh,
	}, s.refreshExpiry)
}

// VerifyRefreshToken parses and validates a refresh token, returning the
// user id it was issued for.
func (s *JWTTokenService) VerifyRefreshToken(token string) (string, error) {
	parsed, err := s.verify(token, tokenUseRefresh)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindAuthentication, err, "invalid or expired refresh token")
	}
	return parsed.UserID, nil
}

func (s *JWTTokenService) sign(claims jwtClaims, expiry time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTTokenService) verify(token, expectedUse string) (*jwtClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("token claims are not valid")
	}
	if claims.TokenUse != expectedUse {
		return nil, fmt.Errorf("unexpected token use: %q", claims.TokenUse)
	}
	return claims, nil
}
