package mw

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func gated(t *testing.T) http.Handler {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := r.Context().Value(UserCtxKey).(string); ok {
			w.Header().Set("X-User", userID)
		}
		w.WriteHeader(http.StatusOK)
	})
	return AuthGate(testSecret, PublicPaths)(next)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAllowListedPathsPassWithoutCredential(t *testing.T) {
	h := gated(t)

	for _, path := range []string{
		"/auth/login",
		"/auth/create_user",
		"/invoice",
		"/invoice/7",
		"/invoice/7/pdf",
		"/allinvoices/7/pdf",
		"/quotation",
		"/allquotation",
		"/vendor",
		"/allvendor",
		"/notification/token",
		"/metrics",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, "path %s should be public", path)
	}
}

func TestProtectedPathWithoutCredential(t *testing.T) {
	h := gated(t)

	req := httptest.NewRequest(http.MethodGet, "/home/profile", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body authError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnauthorized, body.Status)
	assert.Equal(t, "unauthorized", body.Error)
	assert.Equal(t, "missing credential", body.Message)
}

func TestProtectedPathWithValidToken(t *testing.T) {
	h := gated(t)

	token := signToken(t, jwt.MapClaims{
		"user_id": "user-42",
		"exp":     jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	req := httptest.NewRequest(http.MethodGet, "/home/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-42", rr.Header().Get("X-User"))
}

func TestProtectedPathWithExpiredToken(t *testing.T) {
	h := gated(t)

	token := signToken(t, jwt.MapClaims{
		"user_id": "user-42",
		"exp":     jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	req := httptest.NewRequest(http.MethodGet, "/home/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectedPathWithMalformedHeader(t *testing.T) {
	h := gated(t)

	req := httptest.NewRequest(http.MethodGet, "/home/profile", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWildcardDoesNotLeakSiblings(t *testing.T) {
	assert.True(t, pathAllowed(PublicPaths, "/invoice/7"))
	assert.True(t, pathAllowed(PublicPaths, "/allinvoices/7/pdf"))
	assert.False(t, pathAllowed(PublicPaths, "/invoices"))
	assert.False(t, pathAllowed(PublicPaths, "/home"))
	assert.False(t, pathAllowed(PublicPaths, "/allinvoicesX"))
}
