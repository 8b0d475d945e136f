package mw

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const UserCtxKey contextKey = "user_id"

// PublicPaths is the allow-list consulted by AuthGate. A trailing "/*"
// matches the path itself and everything below it. Requests to any other
// path must carry a valid bearer token.
var PublicPaths = []string{
	"/auth/login",
	"/auth/create_user",
	"/invoice",
	"/invoice/*",
	"/allinvoices/*",
	"/quotation",
	"/allquotation",
	"/vendor",
	"/allvendor",
	"/notification/token",
	"/metrics",
}

type authError struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// unauthorized is the dedicated 401 entry point: a structured JSON body
// instead of the default plain-text error page.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(authError{
		Status:  http.StatusUnauthorized,
		Error:   "unauthorized",
		Message: message,
	})
}

func pathAllowed(allowlist []string, path string) bool {
	for _, pattern := range allowlist {
		if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}

// AuthGate validates the bearer token on every request whose path is not in
// the allow-list. Validation is fully stateless; nothing is retained between
// requests.
func AuthGate(jwtSecret string, allowlist []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if pathAllowed(allowlist, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "missing credential")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "invalid token format")
				return
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, "invalid or expired token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w, "invalid claims")
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok {
				unauthorized(w, "user_id not found in token")
				return
			}

			ctx := context.WithValue(r.Context(), UserCtxKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
