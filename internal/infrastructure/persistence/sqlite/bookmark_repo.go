package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/bnema/tempo/internal/domain/entity"
	"github.com/bnema/tempo/internal/domain/repository"
	"github.com/bnema/tempo/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/tempo/internal/logging"
)

// ==================== Bookmark Repository ====================

type bookmarkRepo struct {
	queries *sqlc.Queries
}

// NewBookmarkRepository creates a new SQLite-backed bookmark repository.
func NewBookmarkRepository(db *sql.DB) repository.BookmarkRepository {
	return &bookmarkRepo{queries: sqlc.New(db)}
}

func (r *bookmarkRepo) Save(ctx context.Context, b *entity.Bookmark) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("id", string(b.ID)).Str("url", b.URL).Msg("saving bookmark")

	return r.queries.UpsertBookmark(ctx, sqlc.UpsertBookmarkParams{
		ID:          string(b.ID),
		Title:       b.Title,
		Url:         b.URL,
		Favicon:     b.Favicon,
		Folder:      b.Folder,
		ParentID:    b.ParentID,
		DateAdded:   toMillis(b.DateAdded),
		LastVisited: toMillis(b.LastVisited),
		VisitCount:  int64(b.VisitCount),
	})
}

func (r *bookmarkRepo) GetAll(ctx context.Context) ([]*entity.Bookmark, error) {
	rows, err := r.queries.ListBookmarks(ctx)
	if err != nil {
		return nil, err
	}
	return bookmarksFromRows(rows), nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, id entity.BookmarkID) error {
	return r.queries.DeleteBookmark(ctx, string(id))
}

func bookmarkFromRow(row sqlc.Bookmark) *entity.Bookmark {
	return &entity.Bookmark{
		ID:          entity.BookmarkID(row.ID),
		Title:       row.Title,
		URL:         row.Url,
		Favicon:     row.Favicon,
		Folder:      row.Folder,
		ParentID:    row.ParentID,
		DateAdded:   fromMillis(row.DateAdded),
		LastVisited: fromMillis(row.LastVisited),
		VisitCount:  int(row.VisitCount),
	}
}

func bookmarksFromRows(rows []sqlc.Bookmark) []*entity.Bookmark {
	out := make([]*entity.Bookmark, 0, len(rows))
	for _, row := range rows {
		out = append(out, bookmarkFromRow(row))
	}
	return out
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
