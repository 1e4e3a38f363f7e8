// Package auth resolves session tokens against the hosted identity
// provider. The provider owns registration, login and logout; this service
// only ever asks it "whose session is this token".
package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Errors returned by session resolution.
var (
	ErrInvalidSession      = errors.New("invalid or expired session")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// User identifies an authenticated account as reported by the provider.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Valid reports whether the provider returned a usable identity. Provider
// user ids are UUIDs; anything else is treated as an invalid session rather
// than trusted as an owner id.
func (u User) Valid() bool {
	if _, err := uuid.Parse(u.ID); err != nil {
		return false
	}
	return true
}

// Provider resolves a session token to the user it belongs to. It must
// return ErrInvalidSession for tokens the provider rejects and
// ErrProviderUnavailable when the provider cannot be reached; callers map
// these to 401 and 502 respectively.
type Provider interface {
	ResolveSession(ctx context.Context, token string) (User, error)
}
