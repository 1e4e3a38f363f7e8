package storage

import (
	"context"
	"errors"
	"fmt"

	"go-link-shortener/types"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormStorage implements the Storage interface on top of a relational
// database via GORM. Short-code uniqueness is enforced by the unique index
// on links.short_code: a conflicting insert is rejected by the database
// itself and translated to ErrCodeExists, so concurrent creators across
// multiple process replicas cannot both commit the same code.
type GormStorage struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormStorage migrates the schema and returns a GormStorage.
func NewGormStorage(db *gorm.DB, logger *zap.Logger) (*GormStorage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.AutoMigrate(&types.Link{}); err != nil {
		return nil, fmt.Errorf("migrating link schema: %w", err)
	}
	return &GormStorage{db: db, logger: logger}, nil
}

// Create inserts a new link record. The database's unique constraint on
// short_code makes this an atomic conditional insert.
func (s *GormStorage) Create(ctx context.Context, link types.Link) error {
	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.logger.Warn("Attempt to create duplicate short code", zap.String("shortCode", link.ShortCode))
			return ErrCodeExists
		}
		s.logger.Error("Failed to create link", zap.String("shortCode", link.ShortCode), zap.Error(err))
		return err
	}
	s.logger.Info("Link created",
		zap.String("shortCode", link.ShortCode),
		zap.String("originalURL", link.OriginalURL),
		zap.String("ownerID", link.OwnerID))
	return nil
}

// FindByCode retrieves the link record for a given short code.
func (s *GormStorage) FindByCode(ctx context.Context, code string) (types.Link, error) {
	var link types.Link
	err := s.db.WithContext(ctx).Where("short_code = ?", code).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.Link{}, ErrCodeNotFound
		}
		s.logger.Error("Failed to look up short code", zap.String("shortCode", code), zap.Error(err))
		return types.Link{}, err
	}
	return link, nil
}

// ListByOwner returns the given owner's links, newest first.
func (s *GormStorage) ListByOwner(ctx context.Context, ownerID string) ([]types.Link, error) {
	var links []types.Link
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		s.logger.Error("Failed to list links", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, err
	}
	return links, nil
}

// Open builds a Storage for the configured driver. It returns the storage,
// a close function for the underlying connection, and an error. Supported
// drivers: "memory", "sqlite", "postgres".
func Open(driver, dsn string, capacity int, logger *zap.Logger) (Storage, func() error, error) {
	noop := func() error { return nil }

	switch driver {
	case "memory":
		return NewInMemoryStorage(capacity, logger), noop, nil
	case "sqlite", "postgres":
		var dialector gorm.Dialector
		if driver == "sqlite" {
			dialector = sqlite.Open(dsn)
		} else {
			dialector = postgres.Open(dsn)
		}
		db, err := gorm.Open(dialector, &gorm.Config{
			// TranslateError maps driver-specific unique violations to
			// gorm.ErrDuplicatedKey, which Create relies on.
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s database: %w", driver, err)
		}
		store, err := NewGormStorage(db, logger)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return store, sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
