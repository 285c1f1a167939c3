package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type contextKey struct{}

var claimsKey = contextKey{}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

type TokenParser interface {
	ParseToken(token string) (*Claims, error)
}

type Middleware struct {
	parser TokenParser
	logger *zap.Logger
}

func NewMiddleware(parser TokenParser, logger *zap.Logger) *Middleware {
	return &Middleware{
		parser: parser,
		logger: logger,
	}
}

// RequireAuth fails closed: a missing, malformed, or expired token results
// in a bare 401 with no detail about which check failed.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			m.writeStatus(w, http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}

		claims, err := m.parser.ParseToken(token)
		if err != nil {
			m.writeStatus(w, http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after RequireAuth.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			m.writeStatus(w, http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}
		if !claims.IsAdmin() {
			m.writeStatus(w, http.StatusForbidden, "FORBIDDEN")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) writeStatus(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": code}); err != nil {
		m.logger.Error("failed to encode response", zap.Error(err))
	}
}
