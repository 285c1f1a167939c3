package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
)

type mockTokenParser struct {
	ParseTokenFunc func(token string) (*Claims, error)
}

func (m *mockTokenParser) ParseToken(token string) (*Claims, error) {
	return m.ParseTokenFunc(token)
}

func parserReturning(claims *Claims, err error) *mockTokenParser {
	return &mockTokenParser{
		ParseTokenFunc: func(token string) (*Claims, error) {
			return claims, err
		},
	}
}

func okHandler(t *testing.T, wantEmail string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Error("expected claims in request context")
		} else if claims.Email() != wantEmail {
			t.Errorf("expected email %s, got %s", wantEmail, claims.Email())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	m := NewMiddleware(parserReturning(nil, nil), zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)

	m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	m := NewMiddleware(parserReturning(nil, nil), zap.NewNop())

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer "} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", header)

		m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("handler must not run with header %q", header)
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	m := NewMiddleware(parserReturning(nil, apperrors.NewAuthError("invalid or expired token")), zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with an invalid token")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_PutsClaimsInContext(t *testing.T) {
	claims := &Claims{Role: string(domain.RoleCustomer)}
	claims.Subject = "maria@example.com"
	m := NewMiddleware(parserReturning(claims, nil), zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	m.RequireAuth(okHandler(t, "maria@example.com")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_ForbidsCustomer(t *testing.T) {
	claims := &Claims{Role: string(domain.RoleCustomer)}
	claims.Subject = "maria@example.com"
	m := NewMiddleware(parserReturning(claims, nil), zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	m.RequireAuth(m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for a customer")
	}))).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	claims := &Claims{Role: string(domain.RoleAdmin)}
	claims.Subject = "admin@example.com"
	m := NewMiddleware(parserReturning(claims, nil), zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	m.RequireAuth(m.RequireAdmin(okHandler(t, "admin@example.com"))).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
