package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/auth"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	EmailKey  contextKey = "email"
	RoleKey   contextKey = "role"
)

// Middleware guards routes with bearer-token authentication and role checks
type Middleware struct {
	tokens auth.TokenService
}

// NewMiddleware creates the auth middleware
func NewMiddleware(tokens auth.TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate validates the bearer access token and stores its claims in
// the request context.
func (m *Middleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := m.tokens.VerifyAccessToken(parts[1])
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireAdmin allows only ADMIN callers
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.requireRoles(next, "Admin access required", domain.RoleAdmin)
}

// RequireManager allows ADMIN and MANAGER callers
func (m *Middleware) RequireManager(next http.HandlerFunc) http.HandlerFunc {
	return m.requireRoles(next, "Manager access required", domain.RoleAdmin, domain.RoleManager)
}

// RequireFinance allows ADMIN and FINANCE callers
func (m *Middleware) RequireFinance(next http.HandlerFunc) http.HandlerFunc {
	return m.requireRoles(next, "Finance access required", domain.RoleAdmin, domain.RoleFinance)
}

func (m *Middleware) requireRoles(next http.HandlerFunc, message string, allowed ...domain.Role) http.HandlerFunc {
	return m.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := r.Context().Value(RoleKey).(string)
		if !ok {
			respondError(w, http.StatusForbidden, message)
			return
		}
		role := domain.Role(strings.ToUpper(raw))
		for _, a := range allowed {
			if role == a {
				next.ServeHTTP(w, r)
				return
			}
		}
		respondError(w, http.StatusForbidden, message)
	})
}
