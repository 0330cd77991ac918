package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/expense-tracker/pkg/auth"
	"github.com/tair/expense-tracker/pkg/config"
)

func testMiddleware() (*Middleware, auth.TokenService) {
	tokens := auth.NewJWTTokenService(config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: time.Hour,
	})
	return NewMiddleware(tokens), tokens
}

func bearerRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthenticateMissingHeader(t *testing.T) {
	mw, _ := testMiddleware()
	handler := mw.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	rec := httptest.NewRecorder()
	handler(rec, bearerRequest(""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	mw, _ := testMiddleware()
	handler := mw.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	mw, _ := testMiddleware()
	handler := mw.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	rec := httptest.NewRecorder()
	handler(rec, bearerRequest("not-a-jwt"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatePutsClaimsInContext(t *testing.T) {
	mw, tokens := testMiddleware()
	token, err := tokens.GenerateAccessToken(auth.Claims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Role:   "STAFF",
	})
	require.NoError(t, err)

	var gotID, gotEmail, gotRole string
	handler := mw.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = r.Context().Value(UserIDKey).(string)
		gotEmail, _ = r.Context().Value(EmailKey).(string)
		gotRole, _ = r.Context().Value(RoleKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, bearerRequest(token))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotID)
	assert.Equal(t, "alice@example.com", gotEmail)
	assert.Equal(t, "STAFF", gotRole)
}

func TestRequireAdmin(t *testing.T) {
	mw, tokens := testMiddleware()

	cases := map[string]int{
		"ADMIN":   http.StatusOK,
		"FINANCE": http.StatusForbidden,
		"MANAGER": http.StatusForbidden,
		"STAFF":   http.StatusForbidden,
	}
	for role, want := range cases {
		token, err := tokens.GenerateAccessToken(auth.Claims{UserID: "user-1", Role: role})
		require.NoError(t, err)

		handler := mw.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		handler(rec, bearerRequest(token))
		assert.Equal(t, want, rec.Code, "role %s", role)
	}
}

func TestRequireManagerAndFinance(t *testing.T) {
	mw, tokens := testMiddleware()

	run := func(wrap func(http.HandlerFunc) http.HandlerFunc, role string) int {
		token, err := tokens.GenerateAccessToken(auth.Claims{UserID: "user-1", Role: role})
		require.NoError(t, err)
		handler := wrap(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		rec := httptest.NewRecorder()
		handler(rec, bearerRequest(token))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run(mw.RequireManager, "MANAGER"))
	assert.Equal(t, http.StatusOK, run(mw.RequireManager, "ADMIN"))
	assert.Equal(t, http.StatusForbidden, run(mw.RequireManager, "FINANCE"))

	assert.Equal(t, http.StatusOK, run(mw.RequireFinance, "FINANCE"))
	assert.Equal(t, http.StatusOK, run(mw.RequireFinance, "ADMIN"))
	assert.Equal(t, http.StatusForbidden, run(mw.RequireFinance, "STAFF"))
}
