package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dfalcao/linkbio/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// Auth verifies the bearer token and attaches the verified claims to
// the request context. A missing token is unauthenticated (401); a
// token that fails verification, including an expired one, is
// forbidden (403).
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	secret := []byte(jwtSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Missing bearer token"}}`, http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			claims, err := auth.ParseToken(tokenStr, secret)
			if err != nil {
				http.Error(w, `{"error":{"code":"FORBIDDEN","message":"Invalid or expired token"}}`, http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims extracts the verified session claims from request context.
// Only valid downstream of the Auth middleware.
func GetClaims(ctx context.Context) *auth.Claims {
	return ctx.Value(claimsKey).(*auth.Claims)
}
