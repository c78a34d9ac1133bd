// Package cli wires configuration, storage and the favicon resolver for the
// tempo commands.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/tempo/internal/application/port"
	"github.com/bnema/tempo/internal/application/usecase"
	"github.com/bnema/tempo/internal/cli/styles"
	"github.com/bnema/tempo/internal/domain/build"
	"github.com/bnema/tempo/internal/infrastructure/bookmarks"
	"github.com/bnema/tempo/internal/infrastructure/config"
	"github.com/bnema/tempo/internal/infrastructure/favicon"
	"github.com/bnema/tempo/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tempo/internal/logging"
	"github.com/bnema/tempo/internal/messaging"
)

// Options are the global command-line overrides.
type Options struct {
	// ConfigFile replaces the XDG config file when set.
	ConfigFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	DB          *sqlite.LazyDB
	Favicons    *favicon.Resolver
	BookmarksUC *usecase.ManageBookmarksUseCase
	Router      *messaging.Router

	prober     *favicon.HTTPProber
	ctx        context.Context
	logCleanup func()

	mu  sync.RWMutex
	cfg *config.Config
}

// NewApp creates a new CLI application with all dependencies. Nothing
// touches the network or the database until a command needs it.
func NewApp(opts Options) (*App, error) {
	mgr, err := newManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: string(cfg.Logging.Format), TimeFormat: "15:04:05"},
		logging.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   true,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)
	log := logging.FromContext(ctx)
	if logErr != nil {
		log.Warn().Err(logErr).Str("file", cfg.Logging.File).Msg("log file unavailable, logging to stderr only")
	}
	if mgr.Created() {
		log.Info().Str("file", mgr.GetConfigFile()).Msg("created default configuration file")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	repo := sqlite.NewLazyBookmarkRepository(db)

	prober := favicon.NewHTTPProber(favicon.ProberConfig{
		Timeout:   cfg.Favicon.ProbeTimeout(),
		UserAgent: cfg.Favicon.UserAgent,
		Logger:    logger.With().Str("component", "favicon-http").Logger(),
	})
	resolver := favicon.NewResolver(prober,
		favicon.WithCacheCapacity(cfg.Favicon.CacheCapacity),
		favicon.WithBatchConcurrency(cfg.Favicon.BatchConcurrency),
	)

	bookmarksUC := usecase.NewManageBookmarksUseCase(repo, bookmarkSource(ctx, cfg), resolver, cfg.Favicon.Size)

	router := messaging.NewRouter()
	if err := messaging.RegisterHandlers(ctx, router, messaging.Config{
		BookmarksUC: bookmarksUC,
		Favicons:    resolver,
		IconSize:    bookmarksUC.IconSize,
	}); err != nil {
		logCleanup()
		return nil, fmt.Errorf("register handlers: %w", err)
	}

	return &App{
		cfg:         cfg,
		Manager:     mgr,
		Theme:       styles.NewTheme(),
		DB:          db,
		Favicons:    resolver,
		BookmarksUC: bookmarksUC,
		Router:      router,
		prober:      prober,
		ctx:         ctx,
		logCleanup:  logCleanup,
	}, nil
}

func newManager(configFile string) (*config.Manager, error) {
	if configFile != "" {
		return config.NewManagerForFile(configFile)
	}
	return config.NewManager()
}

// bookmarkSource returns the host bookmark tree reader, or nil when none is
// configured or auto-detection finds nothing.
func bookmarkSource(ctx context.Context, cfg *config.Config) port.BookmarkSource {
	path := cfg.Bookmarks.ChromiumFile
	if path == config.ChromiumFileAuto {
		path = bookmarks.DetectChromiumFile()
		logging.FromContext(ctx).Debug().Str("path", path).Msg("chromium bookmarks auto-detection")
	}
	if path == "" {
		return nil
	}
	return bookmarks.NewChromiumSource(path, cfg.Bookmarks.Limit)
}

// Config returns the configuration currently in effect.
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// WatchConfig reloads the configuration on file changes and applies it
// with ApplyConfig.
func (a *App) WatchConfig() error {
	a.Manager.OnConfigChange(a.ApplyConfig)
	return a.Manager.Watch(a.ctx)
}

// ApplyConfig makes next the current configuration. A changed favicon
// section updates the probe timeout and icon size and clears the favicon
// cache. Cache capacity, batch concurrency, user agent, logging and database
// settings apply on restart.
func (a *App) ApplyConfig(next *config.Config) {
	a.mu.Lock()
	prev := a.cfg
	a.cfg = next
	a.mu.Unlock()

	log := logging.FromContext(a.ctx)
	if next.Favicon != prev.Favicon {
		if a.prober != nil {
			a.prober.SetTimeout(next.Favicon.ProbeTimeout())
		}
		a.BookmarksUC.SetIconSize(next.Favicon.Size)
		a.Favicons.ClearCache()
		log.Info().Int("size", next.Favicon.Size).Msg("favicon settings changed, cache cleared")
	}
	if next.Server.Addr != prev.Server.Addr {
		log.Warn().Str("addr", next.Server.Addr).Msg("server address changed, restart to apply")
	}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}
