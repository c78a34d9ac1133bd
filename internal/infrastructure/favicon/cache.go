package favicon

import (
	"slices"
	"strconv"
	"sync"
)

// CacheKey builds the cache key for a normalized domain and icon size.
func CacheKey(domain string, size int) string {
	return domain + "_" + strconv.Itoa(size)
}

// Cache maps CacheKey values to resolved icon URLs. Entries never expire.
// With a positive capacity, new keys are refused once full; existing keys
// are never evicted.
type Cache struct {
	entries  map[string]string
	capacity int
	mu       sync.RWMutex
}

// NewCache creates a favicon URL cache. capacity <= 0 means unbounded.
func NewCache(capacity int) *Cache {
	return &Cache{
		entries:  make(map[string]string),
		capacity: capacity,
	}
}

// Get returns the cached icon URL for key.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	return v, ok
}

// Set stores iconURL under key. Returns false when the cache is full and
// key is not already present.
func (c *Cache) Set(key, iconURL string) bool {
	if key == "" || iconURL == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.capacity > 0 && len(c.entries) >= c.capacity {
		return false
	}
	c.entries[key] = iconURL
	return true
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]string)
	c.mu.Unlock()
}

// Size returns the number of entries.
func (c *Cache) Size() int {
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()
	return size
}

// Keys returns the cached keys in sorted order.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	c.mu.RUnlock()

	slices.Sort(keys)
	return keys
}
