package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/tempo/internal/domain/entity"
	"github.com/bnema/tempo/internal/domain/repository"
	"github.com/bnema/tempo/internal/logging"
)

// LazyDB opens the bookmark database on first access. CLI commands that only
// resolve favicons never pay for the WASM compilation and migrations.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

// NewLazyDB creates a new lazy database handle.
// The actual connection is not established until DB() is called.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the database connection, initializing it if necessary.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

		db, err := Open(ctx, l.dbPath)

		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()

		if err != nil {
			log.Error().Err(err).Msg("lazy database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the database connection if it was initialized.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// IsInitialized returns true if the database has been initialized.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// LazyBookmarkRepository wraps the bookmark repository with lazy database
// initialization.
type LazyBookmarkRepository struct {
	provider *LazyDB
	repo     repository.BookmarkRepository
	once     sync.Once
	initErr  error
}

// NewLazyBookmarkRepository creates a lazy-loading bookmark repository.
func NewLazyBookmarkRepository(provider *LazyDB) repository.BookmarkRepository {
	return &LazyBookmarkRepository{provider: provider}
}

func (r *LazyBookmarkRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewBookmarkRepository(db)
	})
	return r.initErr
}

func (r *LazyBookmarkRepository) Save(ctx context.Context, b *entity.Bookmark) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, b)
}

func (r *LazyBookmarkRepository) GetAll(ctx context.Context) ([]*entity.Bookmark, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetAll(ctx)
}

func (r *LazyBookmarkRepository) Delete(ctx context.Context, id entity.BookmarkID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, id)
}
