// Package bookmarks reads the host browser's bookmark tree.
package bookmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/tempo/internal/domain/entity"
	"github.com/bnema/tempo/internal/logging"
)

// DefaultLimit is how many of the most recently added bookmarks are kept.
const DefaultLimit = 30

// webkitEpochOffset is the number of microseconds between 1601-01-01 and
// 1970-01-01, the epoch Chromium uses for date_added.
const webkitEpochOffset = 11644473600000000

// node is one entry of a Chromium Bookmarks file.
type node struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	DateAdded string `json:"date_added"`
	Children  []node `json:"children"`
}

type bookmarksFile struct {
	Roots struct {
		BookmarkBar node `json:"bookmark_bar"`
		Other       node `json:"other"`
		Synced      node `json:"synced"`
	} `json:"roots"`
}

// ChromiumSource reads bookmarks from a Chromium-format Bookmarks JSON file.
type ChromiumSource struct {
	path  string
	limit int
}

// NewChromiumSource creates a source for the file at path. limit <= 0 uses DefaultLimit.
func NewChromiumSource(path string, limit int) *ChromiumSource {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &ChromiumSource{path: path, limit: limit}
}

// Bookmarks reads and flattens the bookmark tree. Results are ordered by
// date added, newest first, and truncated to the configured limit.
func (s *ChromiumSource) Bookmarks(ctx context.Context) ([]*entity.Bookmark, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read bookmarks file: %w", err)
	}

	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse bookmarks file %s: %w", s.path, err)
	}

	log.Debug().Str("path", s.path).Int("total", len(list)).Int("limit", s.limit).Msg("host bookmarks read")

	if len(list) > s.limit {
		list = list[:s.limit]
	}
	return list, nil
}

// Parse flattens a Chromium Bookmarks document. URL nodes become bookmarks
// tagged with their nearest named folder (lowercased); the result is sorted
// newest first.
func Parse(data []byte) ([]*entity.Bookmark, error) {
	var file bookmarksFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	var out []*entity.Bookmark
	for _, root := range []node{file.Roots.BookmarkBar, file.Roots.Other, file.Roots.Synced} {
		out = flatten(root, entity.DefaultFolder, "", out)
	}

	slices.SortStableFunc(out, func(a, b *entity.Bookmark) int {
		return b.DateAdded.Compare(a.DateAdded)
	})
	return out, nil
}

func flatten(n node, folder, parentID string, out []*entity.Bookmark) []*entity.Bookmark {
	if n.URL != "" {
		return append(out, &entity.Bookmark{
			ID:        entity.BookmarkID(n.ID),
			Title:     n.Name,
			URL:       n.URL,
			Folder:    folder,
			ParentID:  parentID,
			DateAdded: parseDateAdded(n.DateAdded),
		})
	}

	if n.Name != "" {
		folder = strings.ToLower(n.Name)
	}
	for _, child := range n.Children {
		out = flatten(child, folder, n.ID, out)
	}
	return out
}

func parseDateAdded(raw string) time.Time {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= webkitEpochOffset {
		return time.Time{}
	}
	return time.UnixMicro(v - webkitEpochOffset).UTC()
}

// DetectChromiumFile returns the first existing default-profile Bookmarks
// file of a known Chromium-based browser, or "" when none is found.
func DetectChromiumFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	candidates := []string{
		filepath.Join(configDir, "google-chrome", "Default", "Bookmarks"),
		filepath.Join(configDir, "chromium", "Default", "Bookmarks"),
		filepath.Join(configDir, "BraveSoftware", "Brave-Browser", "Default", "Bookmarks"),
		filepath.Join(configDir, "microsoft-edge", "Default", "Bookmarks"),
		filepath.Join(configDir, "vivaldi", "Default", "Bookmarks"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
