package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tempo/internal/domain/entity"
)

var bookmarksCmd = &cobra.Command{
	Use:     "bookmarks",
	Aliases: []string{"bm"},
	Short:   "Manage new tab page bookmarks",
	Long: `List and edit the bookmarks shown on the new tab page.

Running without a subcommand lists the bookmarks.`,
	RunE: runBookmarksList,
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks with favicons",
	RunE:  runBookmarksList,
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <url> [title]",
	Short: "Add a bookmark",
	Long: `Add a bookmark to the local store. Adding a URL that already exists
returns the existing bookmark unchanged.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBookmarksAdd,
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a bookmark by ID",
	Args:    cobra.ExactArgs(1),
	RunE:    runBookmarksRemove,
}

var bookmarksVisitCmd = &cobra.Command{
	Use:   "visit <id>",
	Short: "Record a visit to a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksVisit,
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksAddCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
	bookmarksCmd.AddCommand(bookmarksVisitCmd)
}

func runBookmarksList(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	list := a.BookmarksUC.List(a.Ctx())
	fmt.Println(a.Theme.RenderBookmarks(list, string(a.BookmarksUC.Origin())))
	return nil
}

func runBookmarksAdd(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	title := ""
	if len(args) > 1 {
		title = args[1]
	}

	bm, err := a.BookmarksUC.Add(a.Ctx(), title, args[0])
	if err != nil {
		return err
	}

	fmt.Println(a.Theme.RenderSuccess(fmt.Sprintf("%s %s", bm.DisplayTitle(), a.Theme.Subtle.Render(string(bm.ID)))))
	return nil
}

func runBookmarksRemove(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if err := a.BookmarksUC.Remove(a.Ctx(), entity.BookmarkID(args[0])); err != nil {
		return err
	}

	fmt.Println(a.Theme.RenderSuccess("removed " + args[0]))
	return nil
}

func runBookmarksVisit(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	bm, err := a.BookmarksUC.RecordVisit(a.Ctx(), entity.BookmarkID(args[0]))
	if err != nil {
		return err
	}

	fmt.Println(a.Theme.RenderSuccess(fmt.Sprintf("%s %s", bm.DisplayTitle(), a.Theme.VisitBadge(bm.VisitCount))))
	return nil
}
