package storage

import (
	"context"
	"sort"
	"sync"

	"go-link-shortener/types"

	"go.uber.org/zap"
)

// InMemoryStorage implements the Storage interface using an in-memory map.
// It backs the "memory" driver used for development and tests.
type InMemoryStorage struct {
	links    map[string]types.Link // Map of short code to link record
	mu       sync.RWMutex          // Read-write mutex for thread-safe access to the map
	capacity int                   // Maximum number of links that can be stored
	logger   *zap.Logger
}

// The sync.RWMutex (mu) guards links. Lookups and listings take the read
// lock and may proceed concurrently; Create takes the write lock so the
// exists-check and the insert happen as one atomic step. That atomicity is
// what upholds the short-code uniqueness invariant for this implementation.

// NewInMemoryStorage creates and returns a new InMemoryStorage instance.
func NewInMemoryStorage(capacity int, logger *zap.Logger) *InMemoryStorage {
	if capacity <= 0 {
		capacity = 1000 // Default capacity if an invalid value is provided
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryStorage{
		links:    make(map[string]types.Link, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

// Create adds a new link record, failing with ErrCodeExists if the short
// code is already taken.
func (s *InMemoryStorage) Create(ctx context.Context, link types.Link) error {
	select {
	case <-ctx.Done():
		s.logger.Warn("Create operation cancelled", zap.String("shortCode", link.ShortCode))
		return ctx.Err()
	default:
		s.mu.Lock()
		defer s.mu.Unlock()

		if len(s.links) >= s.capacity {
			s.logger.Error("Storage capacity reached. Cannot create link", zap.String("shortCode", link.ShortCode))
			return ErrStorageCapacityReached
		}
		if _, exists := s.links[link.ShortCode]; exists {
			s.logger.Warn("Attempt to create duplicate short code", zap.String("shortCode", link.ShortCode))
			return ErrCodeExists
		}

		s.links[link.ShortCode] = link
		s.logger.Info("Link created",
			zap.String("shortCode", link.ShortCode),
			zap.String("originalURL", link.OriginalURL),
			zap.String("ownerID", link.OwnerID))
		return nil
	}
}

// FindByCode retrieves the link record for a given short code.
func (s *InMemoryStorage) FindByCode(ctx context.Context, code string) (types.Link, error) {
	select {
	case <-ctx.Done():
		s.logger.Warn("FindByCode operation cancelled", zap.String("shortCode", code))
		return types.Link{}, ctx.Err()
	default:
		s.mu.RLock()
		defer s.mu.RUnlock()

		if link, exists := s.links[code]; exists {
			return link, nil
		}
		return types.Link{}, ErrCodeNotFound
	}
}

// ListByOwner returns the given owner's links, newest first.
func (s *InMemoryStorage) ListByOwner(ctx context.Context, ownerID string) ([]types.Link, error) {
	select {
	case <-ctx.Done():
		s.logger.Warn("ListByOwner operation cancelled", zap.String("ownerID", ownerID))
		return nil, ctx.Err()
	default:
		s.mu.RLock()
		defer s.mu.RUnlock()

		var links []types.Link
		for _, link := range s.links {
			if link.OwnerID == ownerID {
				links = append(links, link)
			}
		}
		sort.Slice(links, func(i, j int) bool {
			return links[i].CreatedAt.After(links[j].CreatedAt)
		})
		return links, nil
	}
}
