package styles

import (
	"fmt"
	"time"
)

// VisitBadge renders a visit count badge.
func (t *Theme) VisitBadge(count int) string {
	text := fmt.Sprintf("%d visits", count)
	if count == 1 {
		text = "1 visit"
	}
	return t.BadgeMuted.Render(text)
}

// FolderBadge renders a bookmark folder badge.
func (t *Theme) FolderBadge(folder string) string {
	return t.Badge.Render(folder)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// RelativeTime formats a time relative to now ("3h ago"). Zero times render
// as "never".
func RelativeTime(tm time.Time) string {
	return relativeTime(tm, time.Now())
}

func relativeTime(tm, now time.Time) string {
	if tm.IsZero() {
		return "never"
	}

	diff := now.Sub(tm)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "m")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "h")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "d")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/(24*7)), "w")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/(24*30)), "mo")
	default:
		return plural(int(diff.Hours()/(24*365)), "y")
	}
}

func plural(n int, unit string) string {
	return fmt.Sprintf("%d%s ago", n, unit)
}
