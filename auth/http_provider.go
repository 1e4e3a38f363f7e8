package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultResolveTimeout = 5 * time.Second

// HTTPProvider resolves sessions against a hosted identity service exposing
// the Supabase-style `GET {base}/auth/v1/user` endpoint: the service api key
// travels in the `apikey` header and the user's session token as a bearer
// token.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPProvider creates an HTTPProvider for the given provider base URL
// and service api key.
func NewHTTPProvider(baseURL, apiKey string, logger *zap.Logger) *HTTPProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultResolveTimeout},
		logger:  logger,
	}
}

// ResolveSession asks the provider for the user behind the token.
func (p *HTTPProvider) ResolveSession(ctx context.Context, token string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return User{}, err
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("Identity provider unreachable", zap.Error(err))
		return User{}, ErrProviderUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var user User
		if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
			p.logger.Warn("Undecodable identity provider response", zap.Error(err))
			return User{}, ErrProviderUnavailable
		}
		if !user.Valid() {
			p.logger.Warn("Identity provider returned a non-UUID user id", zap.String("userID", user.ID))
			return User{}, ErrInvalidSession
		}
		return user, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return User{}, ErrInvalidSession
	default:
		p.logger.Warn("Unexpected identity provider status", zap.Int("status", resp.StatusCode))
		return User{}, ErrProviderUnavailable
	}
}
