package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-link-shortener/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "link:"

// CachedStorage is a read-through Redis cache in front of another Storage.
// Link records are immutable once committed, so cached entries never need
// invalidation; a TTL keeps the working set bounded. Cache failures are
// logged and the underlying store answers, so Redis being down degrades
// latency, not correctness.
type CachedStorage struct {
	next   Storage
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedStorage wraps next with a Redis read-through cache.
func NewCachedStorage(next Storage, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedStorage{next: next, client: client, ttl: ttl, logger: logger}
}

// Create delegates to the underlying store and primes the cache on success.
func (s *CachedStorage) Create(ctx context.Context, link types.Link) error {
	if err := s.next.Create(ctx, link); err != nil {
		return err
	}
	s.set(ctx, link)
	return nil
}

// FindByCode answers from Redis when possible, falling back to the
// underlying store on a miss or a cache error.
func (s *CachedStorage) FindByCode(ctx context.Context, code string) (types.Link, error) {
	payload, err := s.client.Get(ctx, cacheKeyPrefix+code).Bytes()
	if err == nil {
		var link types.Link
		if jsonErr := json.Unmarshal(payload, &link); jsonErr == nil {
			return link, nil
		}
		s.logger.Warn("Discarding undecodable cache entry", zap.String("shortCode", code))
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("Cache lookup failed", zap.String("shortCode", code), zap.Error(err))
	}

	link, err := s.next.FindByCode(ctx, code)
	if err != nil {
		return types.Link{}, err
	}
	s.set(ctx, link)
	return link, nil
}

// ListByOwner is a pass-through; listings are owner-scoped and served from
// the primary store.
func (s *CachedStorage) ListByOwner(ctx context.Context, ownerID string) ([]types.Link, error) {
	return s.next.ListByOwner(ctx, ownerID)
}

func (s *CachedStorage) set(ctx context.Context, link types.Link) {
	payload, err := json.Marshal(link)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, cacheKeyPrefix+link.ShortCode, payload, s.ttl).Err(); err != nil {
		s.logger.Warn("Cache write failed", zap.String("shortCode", link.ShortCode), zap.Error(err))
	}
}
