// Package storage provides interfaces and common errors for link storage operations.
package storage

import (
	"context"
	"errors"

	"go-link-shortener/types"
)

// Common errors returned by storage operations.
var (
	ErrCodeExists             = errors.New("short code already exists")
	ErrCodeNotFound           = errors.New("short code not found")
	ErrStorageCapacityReached = errors.New("storage capacity reached")
)

// Storage interface defines the methods for link storage operations.
//
// Create is the single point where short-code uniqueness is enforced:
// implementations must commit the record if and only if no record with the
// same code exists, and report ErrCodeExists otherwise. Callers must never
// rely on a FindByCode pre-check for uniqueness; two concurrent creators
// could both see "free" and the second insert would silently clobber the
// first.
type Storage interface {
	Create(ctx context.Context, link types.Link) error
	FindByCode(ctx context.Context, code string) (types.Link, error)
	ListByOwner(ctx context.Context, ownerID string) ([]types.Link, error)
}
