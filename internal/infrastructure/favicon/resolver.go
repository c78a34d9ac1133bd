package favicon

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tempo/internal/domain/entity"
	domainurl "github.com/bnema/tempo/internal/domain/url"
	"github.com/bnema/tempo/internal/logging"
)

// Resolver maps page URLs to favicon URLs. It probes its sources in order,
// caches the first success per (domain, size), and falls back to an embedded
// default icon. It never returns an empty string.
//
// Concurrent resolutions of the same key may both probe and both store the
// same value; that is harmless.
type Resolver struct {
	sources     []Source
	overrides   map[string]string
	prober      Prober
	cache       *Cache
	defaultIcon string
	batchLimit  int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSources replaces the candidate sources. Order is probe order.
func WithSources(sources ...Source) Option {
	return func(r *Resolver) {
		r.sources = append([]Source(nil), sources...)
	}
}

// WithOverrides replaces the per-domain special-case icon URLs.
func WithOverrides(overrides map[string]string) Option {
	return func(r *Resolver) {
		r.overrides = make(map[string]string, len(overrides))
		for k, v := range overrides {
			r.overrides[k] = v
		}
	}
}

// WithCacheCapacity bounds the number of cached entries. <= 0 is unbounded.
func WithCacheCapacity(capacity int) Option {
	return func(r *Resolver) {
		r.cache = NewCache(capacity)
	}
}

// WithBatchConcurrency limits in-flight resolutions in ResolveBatch.
// <= 0 resolves every item at once.
func WithBatchConcurrency(n int) Option {
	return func(r *Resolver) {
		r.batchLimit = n
	}
}

// NewResolver creates a Resolver using prober for candidate validation.
func NewResolver(prober Prober, opts ...Option) *Resolver {
	r := &Resolver{
		sources:     DefaultSources(),
		overrides:   DefaultOverrides(),
		prober:      prober,
		cache:       NewCache(0),
		defaultIcon: DefaultIcon(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultIcon returns the icon used when every candidate fails.
func (r *Resolver) DefaultIcon() string {
	return r.defaultIcon
}

// Resolve returns the favicon URL for rawURL at the given pixel size
// (size <= 0 means DefaultSize). Cached results are returned without
// re-probing. When no candidate passes, the default icon is returned and
// nothing is cached, so the next call probes again.
func (r *Resolver) Resolve(ctx context.Context, rawURL string, size int) (icon string) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.FromContext(ctx).Debug().Interface("panic", rec).Str("url", rawURL).Msg("favicon resolution recovered")
			icon = r.defaultIcon
		}
	}()

	if size <= 0 {
		size = DefaultSize
	}

	domain := domainurl.ExtractDomain(rawURL)
	if domain == "" {
		return r.defaultIcon
	}

	key := CacheKey(domain, size)
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	for _, source := range r.sources {
		candidate := source(domain, size)
		if r.prober.Probe(ctx, candidate) {
			r.cache.Set(key, candidate)
			return candidate
		}
	}

	logging.FromContext(ctx).Debug().Str("domain", domain).Msg("no favicon candidate passed, using default icon")
	return r.defaultIcon
}

// ResolveSmart checks the special-case override for the URL's domain first.
// An override that passes the probe is returned directly without touching the
// cache; otherwise resolution continues as in Resolve.
func (r *Resolver) ResolveSmart(ctx context.Context, rawURL string, size int) (icon string) {
	defer func() {
		if rec := recover(); rec != nil {
			icon = r.defaultIcon
		}
	}()

	domain := domainurl.ExtractDomain(rawURL)
	if override, ok := r.overrides[domain]; ok && r.prober.Probe(ctx, override) {
		return override
	}
	return r.Resolve(ctx, rawURL, size)
}

// ResolveBatch resolves every bookmark concurrently and stores the result in
// its Favicon field. It returns items once all resolutions have finished;
// completion order is unspecified.
func (r *Resolver) ResolveBatch(ctx context.Context, items []*entity.Bookmark, size int) []*entity.Bookmark {
	return r.resolveAll(ctx, items, size, r.Resolve)
}

// ResolveSmartBatch is ResolveBatch with the special-case overrides of
// ResolveSmart applied to each item.
func (r *Resolver) ResolveSmartBatch(ctx context.Context, items []*entity.Bookmark, size int) []*entity.Bookmark {
	return r.resolveAll(ctx, items, size, r.ResolveSmart)
}

func (r *Resolver) resolveAll(
	ctx context.Context,
	items []*entity.Bookmark,
	size int,
	resolve func(context.Context, string, int) string,
) []*entity.Bookmark {
	var g errgroup.Group
	if r.batchLimit > 0 {
		g.SetLimit(r.batchLimit)
	}

	for _, item := range items {
		if item == nil {
			continue
		}
		g.Go(func() error {
			item.Favicon = resolve(ctx, item.URL, size)
			return nil
		})
	}
	_ = g.Wait()

	return items
}

// ClearCache drops every cached resolution.
func (r *Resolver) ClearCache() {
	r.cache.Clear()
}

// CacheStats reports the number of cached resolutions and their keys.
func (r *Resolver) CacheStats() entity.FaviconCacheStats {
	keys := r.cache.Keys()
	return entity.FaviconCacheStats{
		Size:    len(keys),
		Entries: keys,
	}
}
