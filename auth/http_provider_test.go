package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHTTPProviderResolveSession(t *testing.T) {
	ctx := context.Background()
	const userID = "7b0d1c2e-0000-4000-8000-000000000001"

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			assert.Equal(t, "service-key", r.Header.Get("apikey"))
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(User{ID: userID, Email: "user@example.com"})
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL, "service-key", zap.NewNop())
		user, err := provider.ResolveSession(ctx, "session-token")

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "user@example.com", user.Email)
	})

	t.Run("RejectedToken", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL, "service-key", zap.NewNop())
		_, err := provider.ResolveSession(ctx, "bad-token")

		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("NonUUIDUserID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(User{ID: "42", Email: "user@example.com"})
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL, "service-key", zap.NewNop())
		_, err := provider.ResolveSession(ctx, "session-token")

		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("ProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL, "service-key", zap.NewNop())
		_, err := provider.ResolveSession(ctx, "session-token")

		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("ProviderUnreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		provider := NewHTTPProvider(server.URL, "service-key", zap.NewNop())
		_, err := provider.ResolveSession(ctx, "session-token")

		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})
}

func TestUserValid(t *testing.T) {
	assert.True(t, User{ID: "7b0d1c2e-0000-4000-8000-000000000001"}.Valid())
	assert.False(t, User{ID: "not-a-uuid"}.Valid())
	assert.False(t, User{}.Valid())
}
