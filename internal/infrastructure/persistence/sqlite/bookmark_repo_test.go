package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tempo/internal/domain/entity"
	"github.com/bnema/tempo/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tempo/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/tempo/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) (context.Context, *sqlite.LazyDB) {
	t.Helper()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "tempo.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	return testCtx(), lazy
}

func TestBookmarkRepository_CRUD(t *testing.T) {
	ctx, lazy := openTestDB(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewBookmarkRepository(db)

	added := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	b := &entity.Bookmark{
		ID:         "abc",
		Title:      "Go",
		URL:        "https://go.dev",
		Favicon:    "https://www.google.com/s2/favicons?domain=go.dev&sz=32",
		Folder:     "dev",
		ParentID:   "7",
		DateAdded:  added,
		VisitCount: 2,
	}
	require.NoError(t, repo.Save(ctx, b))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, b.Title, got.Title)
	assert.Equal(t, b.URL, got.URL)
	assert.Equal(t, b.Favicon, got.Favicon)
	assert.Equal(t, "dev", got.Folder)
	assert.Equal(t, "7", got.ParentID)
	assert.True(t, added.Equal(got.DateAdded))
	assert.True(t, got.LastVisited.IsZero())
	assert.Equal(t, 2, got.VisitCount)

	// Saving again updates in place.
	b.Title = "The Go Programming Language"
	b.RecordVisit(added.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, b))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "The Go Programming Language", all[0].Title)
	assert.Equal(t, 3, all[0].VisitCount)
	assert.True(t, added.Add(time.Hour).Equal(all[0].LastVisited))

	require.NoError(t, repo.Delete(ctx, b.ID))
	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBookmarkRepository_DeleteMissingIsNoop(t *testing.T) {
	ctx, lazy := openTestDB(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	assert.NoError(t, sqlite.NewBookmarkRepository(db).Delete(ctx, "missing"))
}

func TestBookmarkRepository_GetAllNewestFirst(t *testing.T) {
	ctx, lazy := openTestDB(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewBookmarkRepository(db)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []entity.BookmarkID{"old", "new", "mid"} {
		offsets := []time.Duration{0, 2 * time.Hour, time.Hour}
		require.NoError(t, repo.Save(ctx, &entity.Bookmark{
			ID:        id,
			Title:     string(id),
			URL:       "https://" + string(id) + ".example.com",
			Folder:    entity.DefaultFolder,
			DateAdded: base.Add(offsets[i]),
		}))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, entity.BookmarkID("new"), all[0].ID)
	assert.Equal(t, entity.BookmarkID("mid"), all[1].ID)
	assert.Equal(t, entity.BookmarkID("old"), all[2].ID)
}

func TestBookmarkRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "tempo.db")

	first := sqlite.NewLazyDB(dbPath)
	require.NoError(t, sqlite.NewLazyBookmarkRepository(first).Save(ctx, &entity.Bookmark{
		ID:        "1",
		Title:     "GitHub",
		URL:       "https://github.com",
		Folder:    entity.DefaultFolder,
		DateAdded: time.Now(),
	}))
	require.NoError(t, first.Close())

	second := sqlite.NewLazyDB(dbPath)
	defer func() { _ = second.Close() }()
	all, err := sqlite.NewLazyBookmarkRepository(second).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "GitHub", all[0].Title)
}

func TestQueries_WithTxRollback(t *testing.T) {
	ctx, lazy := openTestDB(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, sqlc.New(db).WithTx(tx).UpsertBookmark(ctx, sqlc.UpsertBookmarkParams{
		ID:     "tx",
		Title:  "Rolled back",
		Url:    "https://example.com",
		Folder: entity.DefaultFolder,
	}))
	require.NoError(t, tx.Rollback())

	rows, err := sqlc.New(db).ListBookmarks(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
