// Package services implements the business logic for creating, resolving
// and listing short links.
package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"go-link-shortener/shortcode"
	"go-link-shortener/storage"
	"go-link-shortener/types"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Errors surfaced by the service layer. Handlers translate these into HTTP
// statuses; raw storage errors never cross this boundary.
var (
	ErrInvalidURL             = errors.New("invalid URL")
	ErrLinkNotFound           = errors.New("link not found")
	ErrStoreUnavailable       = errors.New("link store unavailable")
	ErrTriesExhausted         = errors.New("could not allocate a unique short code")
	ErrStorageCapacityReached = errors.New("storage capacity reached")
)

// maxCreateAttempts bounds the generate/insert loop. The budget is shared
// between code collisions and transient store failures, so a persistently
// unreachable store terminates with ErrTriesExhausted instead of spinning.
const maxCreateAttempts = 10

// LinkService defines the operations offered to the web layer and CLI.
type LinkService interface {
	CreateLink(ctx context.Context, rawURL, ownerID string) (types.Link, error)
	Resolve(ctx context.Context, code string) (types.Link, error)
	ListLinks(ctx context.Context, ownerID string) ([]types.Link, error)
}

type linkService struct {
	store    storage.Storage
	gen      shortcode.Generator
	validate *validator.Validate
	logger   *zap.Logger
	nowFunc  func() time.Time
}

// NewLinkService creates a LinkService backed by the given store and code
// generator.
func NewLinkService(store storage.Storage, gen shortcode.Generator, logger *zap.Logger) LinkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &linkService{
		store:    store,
		gen:      gen,
		validate: validator.New(),
		logger:   logger,
		nowFunc:  time.Now,
	}
}

// CreateLink normalizes and validates rawURL, then allocates a unique short
// code for it. Allocation leans on the store's atomic conditional insert:
// each attempt generates a fresh candidate and tries to commit it, retrying
// on a uniqueness conflict or a transient store error until the attempt
// budget is spent.
func (s *linkService) CreateLink(ctx context.Context, rawURL, ownerID string) (types.Link, error) {
	normalized, err := normalizeURL(rawURL)
	if err != nil {
		return types.Link{}, ErrInvalidURL
	}
	if err := s.validate.Var(normalized, "required,url"); err != nil {
		return types.Link{}, ErrInvalidURL
	}

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		code, err := s.gen.Generate()
		if err != nil {
			return types.Link{}, err
		}
		if shortcode.Reserved(code) {
			s.logger.Debug("Candidate shadowed by a fixed route, retrying",
				zap.String("shortCode", code),
				zap.Int("attempt", attempt))
			continue
		}

		link := types.Link{
			ShortCode:   code,
			OriginalURL: normalized,
			OwnerID:     ownerID,
			CreatedAt:   s.nowFunc().UTC(),
		}

		err = s.store.Create(ctx, link)
		if err == nil {
			s.logger.Info("Short link committed",
				zap.String("shortCode", code),
				zap.String("ownerID", ownerID),
				zap.Int("attempt", attempt))
			return link, nil
		}

		switch {
		case errors.Is(err, storage.ErrCodeExists):
			s.logger.Debug("Short code collision, retrying",
				zap.String("shortCode", code),
				zap.Int("attempt", attempt))
		case errors.Is(err, storage.ErrStorageCapacityReached):
			return types.Link{}, ErrStorageCapacityReached
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return types.Link{}, ErrStoreUnavailable
		default:
			s.logger.Warn("Transient store error during create, retrying",
				zap.Int("attempt", attempt),
				zap.Error(err))
		}
	}

	s.logger.Error("Create attempt budget exhausted",
		zap.String("ownerID", ownerID),
		zap.Int("attempts", maxCreateAttempts))
	return types.Link{}, ErrTriesExhausted
}

// Resolve returns the link record for a short code. A missing code and an
// unreachable store are distinct failures so the web layer can answer 404
// versus 503.
func (s *linkService) Resolve(ctx context.Context, code string) (types.Link, error) {
	link, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrCodeNotFound) {
			return types.Link{}, ErrLinkNotFound
		}
		s.logger.Error("Store lookup failed", zap.String("shortCode", code), zap.Error(err))
		return types.Link{}, ErrStoreUnavailable
	}
	return link, nil
}

// ListLinks returns the owner's links, newest first.
func (s *linkService) ListLinks(ctx context.Context, ownerID string) ([]types.Link, error) {
	links, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Store listing failed", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, ErrStoreUnavailable
	}
	return links, nil
}

// normalizeURL prepends "http://" to inputs lacking a scheme, then requires
// a well-formed http(s) URL with a host. Inputs that already carry a scheme
// are parsed as-is, so "ftp://example.com" fails the scheme check below
// instead of being wrapped into "http://ftp://example.com".
func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidURL
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", ErrInvalidURL
	}
	if parsed.Host == "" {
		return "", ErrInvalidURL
	}
	return raw, nil
}
