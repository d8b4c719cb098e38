package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

type contextKey string

const actorKey contextKey = "auth.actor"

// Middleware guards mutating routes and recovers the acting username from
// the session token for transaction attribution.
type Middleware struct {
	secret []byte
}

func NewMiddleware(secret []byte) *Middleware {
	return &Middleware{secret: secret}
}

// RequireUser rejects requests without a valid bearer token and stores the
// token subject in the request context.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == "" || raw == header {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), actorKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Actor returns the authenticated username, or "" for unauthenticated
// contexts.
func Actor(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey).(string)
	return actor
}
