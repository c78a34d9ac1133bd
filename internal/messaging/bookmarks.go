package messaging

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bnema/tempo/internal/application/usecase"
	"github.com/bnema/tempo/internal/domain/entity"
	"github.com/bnema/tempo/internal/logging"
)

var errMissingID = errors.New("id is required")

// BookmarkHandlers handles bookmark-related requests from the new tab page.
type BookmarkHandlers struct {
	bookmarksUC *usecase.ManageBookmarksUseCase
}

// NewBookmarkHandlers creates a new BookmarkHandlers instance.
func NewBookmarkHandlers(bookmarksUC *usecase.ManageBookmarksUseCase) *BookmarkHandlers {
	return &BookmarkHandlers{bookmarksUC: bookmarksUC}
}

// HandleList handles getBookmarks requests.
func (h *BookmarkHandlers) HandleList() Handler {
	return HandlerFunc(func(ctx context.Context, _ json.RawMessage) (any, error) {
		return h.bookmarksUC.List(ctx), nil
	})
}

// addBookmarkRequest is the payload for addBookmark requests.
type addBookmarkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// HandleAdd handles addBookmark requests.
func (h *BookmarkHandlers) HandleAdd() Handler {
	return HandlerFunc(func(ctx context.Context, payload json.RawMessage) (any, error) {
		_, req, err := ParsePayload[addBookmarkRequest](payload)
		if err != nil {
			return nil, err
		}

		logging.FromContext(ctx).Debug().Str("url", req.URL).Msg("handling addBookmark")

		return h.bookmarksUC.Add(ctx, req.Title, req.URL)
	})
}

// bookmarkIDRequest is the payload for requests addressing one bookmark.
type bookmarkIDRequest struct {
	ID string `json:"id"`
}

func parseBookmarkID(payload json.RawMessage) (entity.BookmarkID, error) {
	_, req, err := ParsePayload[bookmarkIDRequest](payload)
	if err != nil {
		return "", err
	}
	if req.ID == "" {
		return "", errMissingID
	}
	return entity.BookmarkID(req.ID), nil
}

// HandleRemove handles removeBookmark requests.
func (h *BookmarkHandlers) HandleRemove() Handler {
	return HandlerFunc(func(ctx context.Context, payload json.RawMessage) (any, error) {
		id, err := parseBookmarkID(payload)
		if err != nil {
			return nil, err
		}
		if err := h.bookmarksUC.Remove(ctx, id); err != nil {
			return nil, err
		}
		return map[string]string{"id": string(id)}, nil
	})
}

// HandleRecordVisit handles recordVisit requests.
func (h *BookmarkHandlers) HandleRecordVisit() Handler {
	return HandlerFunc(func(ctx context.Context, payload json.RawMessage) (any, error) {
		id, err := parseBookmarkID(payload)
		if err != nil {
			return nil, err
		}
		return h.bookmarksUC.RecordVisit(ctx, id)
	})
}
