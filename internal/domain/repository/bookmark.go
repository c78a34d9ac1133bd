// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"
	"errors"

	"github.com/bnema/tempo/internal/domain/entity"
)

// ErrBookmarkNotFound is returned when a bookmark ID does not exist.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository defines operations for bookmark persistence.
type BookmarkRepository interface {
	// Save creates or updates a bookmark, keyed by its ID.
	Save(ctx context.Context, bookmark *entity.Bookmark) error

	// GetAll retrieves all bookmarks, most recently added first.
	GetAll(ctx context.Context) ([]*entity.Bookmark, error)

	// Delete removes a bookmark by ID. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id entity.BookmarkID) error
}
