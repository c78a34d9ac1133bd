// Package server exposes the new tab page operations over a local HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bnema/tempo/internal/application/port"
	"github.com/bnema/tempo/internal/application/usecase"
	"github.com/bnema/tempo/internal/logging"
	"github.com/bnema/tempo/internal/messaging"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Config holds the server dependencies.
type Config struct {
	Addr         string
	AllowOrigins []string
	Router       *messaging.Router
	BookmarksUC  *usecase.ManageBookmarksUseCase
	Favicons     port.FaviconResolver
	IconSize     func() int
}

// Server wraps the gin engine and its http.Server.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	addr   string
}

// New creates a server. The logger carried by ctx is used for request logs.
func New(ctx context.Context, cfg Config) *Server {
	if logging.FromContext(ctx).GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(ctx))
	engine.Use(CORS(DefaultCORSConfig(cfg.AllowOrigins)))

	h := &handlers{
		router:      cfg.Router,
		bookmarksUC: cfg.BookmarksUC,
		favicons:    cfg.Favicons,
		iconSize:    cfg.IconSize,
	}

	engine.GET("/health", h.health)

	api := engine.Group("/api")
	api.POST("/message", h.message)
	api.GET("/bookmarks", h.bookmarks)
	api.GET("/favicon", h.favicon)

	return &Server{
		engine: engine,
		addr:   cfg.Addr,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           engine,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logging.FromContext(ctx)
	s.http.BaseContext = func(net.Listener) context.Context { return ctx }

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("http server listening")
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	log.Info().Msg("http server shutting down")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
