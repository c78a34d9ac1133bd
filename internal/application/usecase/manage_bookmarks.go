package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/tempo/internal/application/port"
	"github.com/bnema/tempo/internal/domain/entity"
	"github.com/bnema/tempo/internal/domain/repository"
	domainurl "github.com/bnema/tempo/internal/domain/url"
	"github.com/bnema/tempo/internal/logging"
)

// BookmarkOrigin names where the loaded bookmark list came from.
type BookmarkOrigin string

const (
	OriginNone    BookmarkOrigin = ""
	OriginHost    BookmarkOrigin = "host"
	OriginStored  BookmarkOrigin = "stored"
	OriginDefault BookmarkOrigin = "default"
)

// ManageBookmarksUseCase owns the in-memory bookmark list shown on the new
// tab page, keeps it annotated with favicons, and mirrors changes to the
// local store.
type ManageBookmarksUseCase struct {
	repo     repository.BookmarkRepository
	source   port.BookmarkSource
	favicons port.FaviconResolver
	iconSize int
	now      func() time.Time

	mu        sync.Mutex
	bookmarks []*entity.Bookmark
	origin    BookmarkOrigin
	// seeded is true once the store holds the full in-memory list.
	seeded bool
}

// NewManageBookmarksUseCase creates a new bookmark management use case.
// source may be nil when no host bookmark tree is configured.
func NewManageBookmarksUseCase(
	repo repository.BookmarkRepository,
	source port.BookmarkSource,
	favicons port.FaviconResolver,
	iconSize int,
) *ManageBookmarksUseCase {
	return &ManageBookmarksUseCase{
		repo:     repo,
		source:   source,
		favicons: favicons,
		iconSize: iconSize,
		now:      time.Now,
	}
}

// Load (re)builds the bookmark list. The host bookmark tree wins when it can
// be read; otherwise the stored list is used, and when that is empty or
// unreadable the built-in defaults are shown. Load never fails.
func (uc *ManageBookmarksUseCase) Load(ctx context.Context) []*entity.Bookmark {
	log := logging.FromContext(ctx)

	list, origin := uc.fetch(ctx)
	if origin == OriginHost {
		now := uc.now()
		for _, b := range list {
			b.VisitCount = 0
			b.LastVisited = now
		}
	}

	uc.favicons.ResolveBatch(ctx, list, uc.IconSize())

	uc.mu.Lock()
	uc.bookmarks = list
	uc.origin = origin
	uc.seeded = origin == OriginStored
	out := cloneBookmarks(list)
	uc.mu.Unlock()

	log.Info().Str("origin", string(origin)).Int("count", len(list)).Msg("bookmarks loaded")
	return out
}

func (uc *ManageBookmarksUseCase) fetch(ctx context.Context) ([]*entity.Bookmark, BookmarkOrigin) {
	log := logging.FromContext(ctx)

	if uc.source != nil {
		list, err := uc.source.Bookmarks(ctx)
		if err == nil {
			return list, OriginHost
		}
		log.Warn().Err(err).Msg("host bookmarks unavailable, using defaults")
		return entity.DefaultBookmarks(), OriginDefault
	}

	stored, err := uc.repo.GetAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("stored bookmarks unavailable, using defaults")
		return entity.DefaultBookmarks(), OriginDefault
	}
	if len(stored) == 0 {
		return entity.DefaultBookmarks(), OriginDefault
	}
	return stored, OriginStored
}

// IconSize returns the favicon size used for loaded and added bookmarks.
func (uc *ManageBookmarksUseCase) IconSize() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.iconSize
}

// SetIconSize changes the favicon size for later loads and adds.
func (uc *ManageBookmarksUseCase) SetIconSize(size int) {
	uc.mu.Lock()
	uc.iconSize = size
	uc.mu.Unlock()
}

// Origin reports where the current list came from.
func (uc *ManageBookmarksUseCase) Origin() BookmarkOrigin {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.origin
}

// List returns the current bookmarks, loading them on first use.
func (uc *ManageBookmarksUseCase) List(ctx context.Context) []*entity.Bookmark {
	uc.mu.Lock()
	loaded := uc.origin != OriginNone
	out := cloneBookmarks(uc.bookmarks)
	uc.mu.Unlock()

	if !loaded {
		return uc.Load(ctx)
	}
	return out
}

// Add creates a bookmark at the top of the list. Adding a URL that is already
// bookmarked returns the existing bookmark.
func (uc *ManageBookmarksUseCase) Add(ctx context.Context, title, rawURL string) (*entity.Bookmark, error) {
	log := logging.FromContext(ctx)

	target := domainurl.Normalize(rawURL)
	if err := domainurl.Validate(target); err != nil {
		return nil, fmt.Errorf("add bookmark %q: %w", rawURL, err)
	}
	if title == "" {
		title = domainurl.ExtractDomain(target)
	}

	uc.List(ctx)

	uc.mu.Lock()
	if i := uc.indexByURL(target); i >= 0 {
		existing := *uc.bookmarks[i]
		uc.mu.Unlock()
		log.Debug().Str("url", target).Msg("URL already bookmarked")
		return &existing, nil
	}
	uc.mu.Unlock()

	bookmark := entity.NewBookmark(title, target)
	bookmark.Favicon = uc.favicons.ResolveSmart(ctx, target, uc.IconSize())

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Another Add for the same URL may have finished while the favicon resolved.
	if i := uc.indexByURL(target); i >= 0 {
		existing := *uc.bookmarks[i]
		log.Debug().Str("url", target).Msg("URL already bookmarked")
		return &existing, nil
	}

	prev := uc.bookmarks
	uc.bookmarks = append([]*entity.Bookmark{bookmark}, uc.bookmarks...)
	if err := uc.persistLocked(ctx, bookmark); err != nil {
		uc.bookmarks = prev
		return nil, fmt.Errorf("failed to save bookmark: %w", err)
	}

	log.Info().Str("url", target).Str("id", string(bookmark.ID)).Msg("bookmark added")
	out := *bookmark
	return &out, nil
}

// Remove deletes a bookmark by ID.
func (uc *ManageBookmarksUseCase) Remove(ctx context.Context, id entity.BookmarkID) error {
	uc.List(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexByID(id)
	if i < 0 {
		return fmt.Errorf("remove bookmark %s: %w", id, repository.ErrBookmarkNotFound)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	prev := uc.bookmarks
	uc.bookmarks = slices.Delete(slices.Clone(uc.bookmarks), i, i+1)
	if err := uc.persistLocked(ctx); err != nil {
		uc.bookmarks = prev
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}

	logging.FromContext(ctx).Info().Str("id", string(id)).Msg("bookmark removed")
	return nil
}

// RecordVisit increments a bookmark's visit count and stamps the visit time.
func (uc *ManageBookmarksUseCase) RecordVisit(ctx context.Context, id entity.BookmarkID) (*entity.Bookmark, error) {
	uc.List(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexByID(id)
	if i < 0 {
		return nil, fmt.Errorf("record visit %s: %w", id, repository.ErrBookmarkNotFound)
	}
	bookmark := uc.bookmarks[i]
	prev := *bookmark
	bookmark.RecordVisit(uc.now())

	if err := uc.persistLocked(ctx, bookmark); err != nil {
		*bookmark = prev
		return nil, fmt.Errorf("failed to save bookmark: %w", err)
	}

	out := *bookmark
	return &out, nil
}

// persistLocked writes changed bookmarks to the store. The first write after
// loading from the host tree or defaults stores the whole list so the store
// mirrors what the page shows. Callers hold uc.mu.
func (uc *ManageBookmarksUseCase) persistLocked(ctx context.Context, changed ...*entity.Bookmark) error {
	toSave := changed
	if !uc.seeded {
		toSave = uc.bookmarks
	}

	for _, b := range toSave {
		if err := uc.repo.Save(ctx, b); err != nil {
			return err
		}
	}
	uc.seeded = true
	return nil
}

func (uc *ManageBookmarksUseCase) indexByID(id entity.BookmarkID) int {
	return slices.IndexFunc(uc.bookmarks, func(b *entity.Bookmark) bool { return b.ID == id })
}

func (uc *ManageBookmarksUseCase) indexByURL(rawURL string) int {
	return slices.IndexFunc(uc.bookmarks, func(b *entity.Bookmark) bool { return b.URL == rawURL })
}

func cloneBookmarks(in []*entity.Bookmark) []*entity.Bookmark {
	out := make([]*entity.Bookmark, 0, len(in))
	for _, b := range in {
		c := *b
		out = append(out, &c)
	}
	return out
}
