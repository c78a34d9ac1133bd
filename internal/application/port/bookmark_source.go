package port

import (
	"context"

	"github.com/bnema/tempo/internal/domain/entity"
)

// BookmarkSource supplies bookmarks owned by the host browser.
type BookmarkSource interface {
	// Bookmarks returns the flattened, most recent bookmarks.
	Bookmarks(ctx context.Context) ([]*entity.Bookmark, error)
}
