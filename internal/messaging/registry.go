package messaging

import (
	"context"
	"fmt"

	"github.com/bnema/tempo/internal/application/port"
	"github.com/bnema/tempo/internal/application/usecase"
	"github.com/bnema/tempo/internal/logging"
)

// Action names understood by the new tab page.
const (
	ActionGetBookmarks      = "getBookmarks"
	ActionAddBookmark       = "addBookmark"
	ActionRemoveBookmark    = "removeBookmark"
	ActionRecordVisit       = "recordVisit"
	ActionResolveFavicon    = "resolveFavicon"
	ActionFaviconCacheStats = "faviconCacheStats"
	ActionClearFaviconCache = "clearFaviconCache"
)

// Config holds dependencies for the page handlers.
type Config struct {
	BookmarksUC *usecase.ManageBookmarksUseCase
	Favicons    port.FaviconResolver
	// IconSize returns the current default favicon size.
	IconSize func() int
}

// RegisterHandlers registers all page handlers with the router.
func RegisterHandlers(ctx context.Context, router *Router, cfg Config) error {
	log := logging.FromContext(ctx)

	handlers := make(map[string]Handler)

	bookmarkHandlers := NewBookmarkHandlers(cfg.BookmarksUC)
	handlers[ActionGetBookmarks] = bookmarkHandlers.HandleList()
	handlers[ActionAddBookmark] = bookmarkHandlers.HandleAdd()
	handlers[ActionRemoveBookmark] = bookmarkHandlers.HandleRemove()
	handlers[ActionRecordVisit] = bookmarkHandlers.HandleRecordVisit()

	faviconHandlers := NewFaviconHandlers(cfg.Favicons, cfg.IconSize)
	handlers[ActionResolveFavicon] = faviconHandlers.HandleResolve()
	handlers[ActionFaviconCacheStats] = faviconHandlers.HandleCacheStats()
	handlers[ActionClearFaviconCache] = faviconHandlers.HandleClearCache()

	for action, handler := range handlers {
		if err := router.Register(action, handler); err != nil {
			return fmt.Errorf("failed to register handler %s: %w", action, err)
		}
	}

	log.Debug().Int("count", len(handlers)).Msg("page handlers registered")
	return nil
}
