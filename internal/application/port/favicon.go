// Package port defines the interfaces use cases depend on; infrastructure
// packages provide the implementations.
package port

import (
	"context"

	"github.com/bnema/tempo/internal/domain/entity"
)

// FaviconResolver maps page URLs to icon URLs. Every method is total: the
// returned icon is never empty and no error reaches the caller.
type FaviconResolver interface {
	// Resolve probes the candidate chain, caching the first success.
	Resolve(ctx context.Context, rawURL string, size int) string

	// ResolveSmart tries the special-case override before Resolve.
	ResolveSmart(ctx context.Context, rawURL string, size int) string

	// ResolveBatch annotates every item's Favicon concurrently.
	ResolveBatch(ctx context.Context, items []*entity.Bookmark, size int) []*entity.Bookmark

	// ClearCache drops all cached resolutions.
	ClearCache()

	// CacheStats reports cache size and keys.
	CacheStats() entity.FaviconCacheStats
}
