package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tempo/internal/domain/build"
	"github.com/bnema/tempo/internal/domain/entity"
)

// FaviconLine is one resolved favicon for display.
type FaviconLine struct {
	URL       string
	Favicon   string
	IsDefault bool
}

// RenderFavicons renders resolve results, one per line.
func (t *Theme) RenderFavicons(lines []FaviconLine) string {
	var b strings.Builder
	for _, l := range lines {
		mark := t.SuccessStyle.Render(IconCheck)
		icon := t.Normal.Render(l.Favicon)
		if l.IsDefault {
			mark = t.WarningStyle.Render(IconX)
			icon = t.Subtle.Render("default icon")
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", mark, t.Title.Render(l.URL), t.Subtle.Render(IconArrow), icon)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderBookmarks renders the bookmark list as the new tab page would
// order it, with folder, visit and favicon metadata.
func (t *Theme) RenderBookmarks(bookmarks []*entity.Bookmark, origin string) string {
	header := t.BoxHeader.Render(fmt.Sprintf("%s Bookmarks (%d)", IconGlobe, len(bookmarks)))
	if origin != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, " ", t.MutedBadge(origin))
	}

	if len(bookmarks) == 0 {
		return header + "\n" + t.Subtle.Render("No bookmarks")
	}

	rows := make([]string, 0, len(bookmarks))
	for _, bm := range bookmarks {
		title := t.Title.Render(bm.DisplayTitle())
		meta := strings.Join([]string{
			t.FolderBadge(bm.Folder),
			t.VisitBadge(bm.VisitCount),
			t.MutedBadge(RelativeTime(bm.LastVisited)),
		}, " ")
		rows = append(rows, fmt.Sprintf("%s  %s\n  %s\n  %s %s",
			title, meta,
			t.Subtle.Render(bm.URL),
			t.Subtle.Render(string(bm.ID)),
			t.Subtle.Render(IconImage+" "+truncate(bm.Favicon, 72)),
		))
	}
	return header + "\n" + strings.Join(rows, "\n\n")
}

// RenderCacheStats renders favicon cache statistics.
func (t *Theme) RenderCacheStats(stats entity.FaviconCacheStats) string {
	lines := []string{fmt.Sprintf("%s %s %s", t.Highlight.Render(IconCache), t.Subtle.Render("Cached icons"), t.Title.Render(fmt.Sprint(stats.Size)))}
	for _, key := range stats.Entries {
		lines = append(lines, "  "+t.Normal.Render(key))
	}
	return strings.Join(lines, "\n")
}

// RenderKeyValue renders a labelled value.
func (t *Theme) RenderKeyValue(icon, key, value string) string {
	return fmt.Sprintf("%s %s %s", t.Highlight.Render(icon), t.Subtle.Render(key), t.Normal.Render(value))
}

// RenderError renders an error line.
func (t *Theme) RenderError(err error) string {
	return t.ErrorStyle.Render(IconX + " " + err.Error())
}

// RenderSuccess renders a confirmation line.
func (t *Theme) RenderSuccess(msg string) string {
	return t.SuccessStyle.Render(IconCheck + " " + msg)
}

// RenderAbout renders build info lines.
func (t *Theme) RenderAbout(info build.Info) string {
	lines := []string{
		t.RenderKeyValue(IconVersion, "Version", info.Version),
		t.RenderKeyValue(IconGitBranch, "Commit", info.Commit),
		t.RenderKeyValue(IconCalendar, "Built", info.BuildDate),
		t.RenderKeyValue(IconGo, "Go", info.GoVersion),
		t.RenderKeyValue(IconGithub, "Repo", build.RepoURL()),
	}
	return t.Box.Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
