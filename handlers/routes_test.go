package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	authmocks "go-link-shortener/auth/mocks"
	"go-link-shortener/config"
	handlermocks "go-link-shortener/handlers/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := config.DefaultConfig()
	cfg.DisableRateLimit = true

	handler := new(handlermocks.MockLinkHandler)
	handler.On("Home", mock.Anything).Run(func(args mock.Arguments) {
		c := args.Get(0).(*gin.Context)
		c.String(http.StatusOK, "home")
	})

	RegisterRoutes(router, handler, new(authmocks.MockProvider), cfg, zap.NewNop())

	expected := []string{
		"GET /",
		"POST /",
		"GET /links",
		"GET /health",
		"GET /about",
		"GET /contact",
		"GET /terms",
		"GET /privacy",
		"GET /:short_code",
	}

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range expected {
		assert.True(t, registered[route], "route %s should be registered", route)
	}
	require.GreaterOrEqual(t, len(router.Routes()), len(expected))

	// The registered home route dispatches to the handler.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	handler.AssertCalled(t, "Home", mock.Anything)
}
