package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Open Without Verifier", func(t *testing.T) {
		srv := &Server{}
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/session", nil)

		srv.authMiddleware(okHandler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	srv := &Server{
		oidcAudience: "test-audience",
		verifyToken: func(ctx context.Context, rawIDToken string) (*oidc.IDToken, error) {
			if rawIDToken == "valid-token" {
				return &oidc.IDToken{Subject: "user@example.com"}, nil
			}
			return nil, assert.AnError
		},
	}

	t.Run("Missing Header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/session", nil)

		srv.authMiddleware(okHandler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Not Bearer", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/session", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		srv.authMiddleware(okHandler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/session", nil)
		req.Header.Set("Authorization", "Bearer bogus")

		srv.authMiddleware(okHandler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/session", nil)
		req.Header.Set("Authorization", "Bearer valid-token")

		srv.authMiddleware(okHandler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHealthz(t *testing.T) {
	srv := &Server{}
	handler := srv.setupHandler()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
