package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookmarkID uniquely identifies a bookmark. Host browser trees use
// numeric strings; locally created bookmarks get a UUID.
type BookmarkID string

// DefaultFolder is the folder assigned to bookmarks with no named parent.
const DefaultFolder = "other"

// Bookmark represents a URL shown in the new-tab sidebar.
type Bookmark struct {
	ID          BookmarkID `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Favicon     string     `json:"favicon,omitempty"`
	Folder      string     `json:"folder"`
	ParentID    string     `json:"parentId,omitempty"`
	DateAdded   time.Time  `json:"dateAdded"`
	LastVisited time.Time  `json:"lastVisited"`
	VisitCount  int        `json:"visitCount"`
}

// NewBookmark creates a locally owned bookmark with a fresh ID.
func NewBookmark(title, url string) *Bookmark {
	now := time.Now()
	return &Bookmark{
		ID:          BookmarkID(uuid.NewString()),
		Title:       title,
		URL:         url,
		Folder:      DefaultFolder,
		DateAdded:   now,
		LastVisited: now,
	}
}

// RecordVisit bumps the visit counter and last-visited time.
func (b *Bookmark) RecordVisit(at time.Time) {
	b.VisitCount++
	b.LastVisited = at
}

// DisplayTitle returns the title, or the URL when the title is empty.
func (b *Bookmark) DisplayTitle() string {
	if b.Title != "" {
		return b.Title
	}
	return b.URL
}

// DefaultBookmarks is the list shown when no other source has bookmarks.
func DefaultBookmarks() []*Bookmark {
	defaults := []struct {
		id, title, url string
	}{
		{"1", "GitHub", "https://github.com"},
		{"2", "YouTube", "https://youtube.com"},
		{"3", "Gmail", "https://gmail.com"},
		{"4", "Reddit", "https://reddit.com"},
		{"5", "Amazon", "https://amazon.com"},
	}

	now := time.Now()
	out := make([]*Bookmark, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, &Bookmark{
			ID:          BookmarkID(d.id),
			Title:       d.title,
			URL:         d.url,
			Folder:      DefaultFolder,
			LastVisited: now,
		})
	}
	return out
}
