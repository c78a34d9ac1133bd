// Package cmd provides Cobra CLI commands for tempo.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tempo/internal/cli"
	"github.com/bnema/tempo/internal/cli/styles"
	"github.com/bnema/tempo/internal/domain/build"
)

var (
	app         *cli.App
	buildInfo   build.Info
	flagConfig  string
	flagLogging string
	rootCmd     = &cobra.Command{
		Use:   "tempo",
		Short: "Favicons and bookmarks for the browser new tab page",
		Long: `Tempo - the backend of a browser new tab page.

Tempo resolves website favicons and keeps the bookmark list shown on the
new tab page. The page talks to it over a small JSON message protocol.

Features:
  - Favicon lookup with fallback chain and size-aware providers
  - Bookmarks seeded from the Chromium bookmark tree when available
  - Local SQLite store for added bookmarks and visit counts
  - HTTP bridge for extension pages (POST /api/message)

Use 'tempo serve' to start the bridge, or explore the subcommands for
one-off favicon lookups and bookmark management.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: flagConfig, LogLevel: flagLogging})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/tempo/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogging, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.NewTheme().RenderError(err))
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
