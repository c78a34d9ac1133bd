package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tempo/internal/cli/styles"
	"github.com/bnema/tempo/internal/domain/entity"
)

var (
	resolveSize  int
	resolveSmart bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>...",
	Short: "Resolve favicons for one or more URLs",
	Long: `Look up the favicon for each URL using the same fallback chain as the
new tab page. URLs that yield nothing show the default icon.

Examples:
  tempo resolve github.com
  tempo resolve --size 64 https://news.ycombinator.com go.dev
  tempo resolve --smart https://www.youtube.com/watch?v=abc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().IntVarP(&resolveSize, "size", "s", 0, "icon size in pixels (default favicon.size)")
	resolveCmd.Flags().BoolVar(&resolveSmart, "smart", false, "use site-specific overrides before probing")
}

func runResolve(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	size := resolveSize
	if size <= 0 {
		size = a.Config().Favicon.Size
	}

	items := make([]*entity.Bookmark, 0, len(args))
	for _, raw := range args {
		items = append(items, &entity.Bookmark{URL: raw})
	}

	ctx := a.Ctx()
	if resolveSmart {
		a.Favicons.ResolveSmartBatch(ctx, items, size)
	} else {
		a.Favicons.ResolveBatch(ctx, items, size)
	}

	fmt.Println(a.Theme.RenderFavicons(faviconLines(items, a.Favicons.DefaultIcon())))
	return nil
}

func faviconLines(items []*entity.Bookmark, defaultIcon string) []styles.FaviconLine {
	lines := make([]styles.FaviconLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, styles.FaviconLine{URL: item.URL, Favicon: item.Favicon, IsDefault: item.Favicon == defaultIcon})
	}
	return lines
}
