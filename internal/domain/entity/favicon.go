package entity

// FaviconCacheStats reports the favicon cache size and its keys.
type FaviconCacheStats struct {
	Size    int      `json:"size"`
	Entries []string `json:"entries"`
}
