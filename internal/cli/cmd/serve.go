package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/tempo/internal/server"
)

var (
	serveAddr    string
	serveNoWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the new tab page message bridge over HTTP",
	Long: `Start the HTTP bridge used by the new tab page.

Endpoints:
  POST /api/message    JSON message protocol ({action, requestId, ...})
  GET  /api/bookmarks  current bookmark list
  GET  /api/favicon    ?url=...&size=...&smart=true
  GET  /health         liveness probe

The configuration file is watched while serving. Changes to favicon.size
and favicon.probe_timeout_ms apply immediately and clear the favicon cache.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default server.addr)")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "do not reload the config file on changes")
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := a.Logger()

	cfg := a.Config()

	if !serveNoWatch {
		if err := a.WatchConfig(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	// Warm the list so the first page load doesn't wait on favicon probes.
	go a.BookmarksUC.Load(ctx)

	srv := server.New(ctx, server.Config{
		Addr:         addr,
		AllowOrigins: cfg.Server.AllowOrigins,
		Router:       a.Router,
		BookmarksUC:  a.BookmarksUC,
		Favicons:     a.Favicons,
		IconSize:     a.BookmarksUC.IconSize,
	})
	return srv.Run(ctx)
}
