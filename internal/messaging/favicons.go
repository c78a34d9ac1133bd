package messaging

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bnema/tempo/internal/application/port"
)

// FaviconResult is the data returned for resolveFavicon.
type FaviconResult struct {
	URL     string `json:"url"`
	Favicon string `json:"favicon"`
}

// FaviconHandlers handles favicon-related requests from the new tab page.
type FaviconHandlers struct {
	resolver    port.FaviconResolver
	defaultSize func() int
}

// NewFaviconHandlers creates a new FaviconHandlers instance. defaultSize is
// consulted on every request that omits size; nil leaves the choice to the
// resolver.
func NewFaviconHandlers(resolver port.FaviconResolver, defaultSize func() int) *FaviconHandlers {
	return &FaviconHandlers{resolver: resolver, defaultSize: defaultSize}
}

// resolveFaviconRequest is the payload for resolveFavicon requests.
type resolveFaviconRequest struct {
	URL   string `json:"url"`
	Size  int    `json:"size"`
	Smart bool   `json:"smart"`
}

// HandleResolve handles resolveFavicon requests.
func (h *FaviconHandlers) HandleResolve() Handler {
	return HandlerFunc(func(ctx context.Context, payload json.RawMessage) (any, error) {
		_, req, err := ParsePayload[resolveFaviconRequest](payload)
		if err != nil {
			return nil, err
		}
		if req.URL == "" {
			return nil, errors.New("url is required")
		}

		size := req.Size
		if size <= 0 && h.defaultSize != nil {
			size = h.defaultSize()
		}

		var icon string
		if req.Smart {
			icon = h.resolver.ResolveSmart(ctx, req.URL, size)
		} else {
			icon = h.resolver.Resolve(ctx, req.URL, size)
		}
		return FaviconResult{URL: req.URL, Favicon: icon}, nil
	})
}

// HandleCacheStats handles faviconCacheStats requests.
func (h *FaviconHandlers) HandleCacheStats() Handler {
	return HandlerFunc(func(_ context.Context, _ json.RawMessage) (any, error) {
		return h.resolver.CacheStats(), nil
	})
}

// HandleClearCache handles clearFaviconCache requests.
func (h *FaviconHandlers) HandleClearCache() Handler {
	return HandlerFunc(func(_ context.Context, _ json.RawMessage) (any, error) {
		h.resolver.ClearCache()
		return nil, nil
	})
}
