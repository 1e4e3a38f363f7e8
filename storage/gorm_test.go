package storage

import (
	"context"
	"testing"
	"time"

	"go-link-shortener/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSQLiteStorage(t *testing.T) *GormStorage {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory sqlite")

	store, err := NewGormStorage(db, zap.NewNop())
	require.NoError(t, err, "Failed to migrate schema")
	return store
}

func TestGormStorage(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStorage(t)

	base := time.Now().UTC().Truncate(time.Second)
	link := types.Link{
		ShortCode:   "Ab3xY9",
		OriginalURL: "https://example.com",
		OwnerID:     "owner-a",
		CreatedAt:   base,
	}

	t.Run("CreateAndFind", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, link))

		got, err := store.FindByCode(ctx, "Ab3xY9")
		require.NoError(t, err)
		assert.Equal(t, link.OriginalURL, got.OriginalURL)
		assert.Equal(t, link.OwnerID, got.OwnerID)
	})

	t.Run("DuplicateCodeIsConflict", func(t *testing.T) {
		dup := link
		dup.ID = 0
		dup.OriginalURL = "https://other.example.com"

		err := store.Create(ctx, dup)
		assert.ErrorIs(t, err, ErrCodeExists)

		// The committed record must be untouched.
		got, err := store.FindByCode(ctx, "Ab3xY9")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.OriginalURL)
	})

	t.Run("FindMissingCode", func(t *testing.T) {
		_, err := store.FindByCode(ctx, "zzzzzz")
		assert.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("ListByOwnerNewestFirst", func(t *testing.T) {
		newer := types.Link{
			ShortCode:   "Cd4zW8",
			OriginalURL: "https://example.com/newer",
			OwnerID:     "owner-a",
			CreatedAt:   base.Add(time.Minute),
		}
		other := types.Link{
			ShortCode:   "Ef5vU7",
			OriginalURL: "https://example.com/other",
			OwnerID:     "owner-b",
			CreatedAt:   base.Add(2 * time.Minute),
		}
		require.NoError(t, store.Create(ctx, newer))
		require.NoError(t, store.Create(ctx, other))

		links, err := store.ListByOwner(ctx, "owner-a")
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "Cd4zW8", links[0].ShortCode)
		assert.Equal(t, "Ab3xY9", links[1].ShortCode)

		for _, l := range links {
			assert.Equal(t, "owner-a", l.OwnerID)
		}
	})
}
