// Package favicon resolves bookmark URLs to usable favicon URLs by probing an
// ordered list of candidate sources and caching the first success.
package favicon

import (
	"fmt"
	"net/url"
)

// DefaultSize is the icon size in pixels used when callers pass size <= 0.
const DefaultSize = 32

// Source builds one candidate favicon URL for a normalized domain.
type Source func(domain string, size int) string

// DefaultSources returns the candidate sources in probe order: the favicon
// aggregators first, then well-known paths at the site root.
func DefaultSources() []Source {
	return []Source{
		func(domain string, size int) string {
			return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=%d", url.QueryEscape(domain), size)
		},
		func(domain string, _ int) string {
			return fmt.Sprintf("https://icons.duckduckgo.com/ip3/%s.ico", url.PathEscape(domain))
		},
		func(domain string, _ int) string {
			return "https://favicon.yandex.net/favicon/" + url.PathEscape(domain)
		},
		siteRoot("/favicon.ico"),
		siteRoot("/favicon.png"),
		siteRoot("/apple-touch-icon.png"),
	}
}

func siteRoot(path string) Source {
	return func(domain string, _ int) string {
		return "https://" + domain + path
	}
}

// DefaultOverrides maps domains whose generic candidates are unreliable to a
// hand-picked icon URL.
func DefaultOverrides() map[string]string {
	return map[string]string{
		"youtube.com":       "https://www.youtube.com/favicon.ico",
		"google.com":        "https://www.google.com/favicon.ico",
		"github.com":        "https://github.com/favicon.ico",
		"stackoverflow.com": "https://stackoverflow.com/favicon.ico",
		"reddit.com":        "https://www.reddit.com/favicon.ico",

		"clashofclans.fandom.com": "https://static.wikia.nocookie.net/clashofclans/images/6/64/Favicon.ico",

		"maps.google.com":     "https://maps.google.com/favicon.ico",
		"accounts.google.com": "https://accounts.google.com/favicon.ico",
		"gmail.com":           "https://ssl.gstatic.com/ui/v1/icons/mail/rfr/gmail.ico",
		"icicibank.com":       "https://www.icicibank.com/favicon.ico",
	}
}

const defaultIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none">` +
	`<circle cx="12" cy="12" r="10" stroke="#666" stroke-width="1.5" fill="#333"/>` +
	`<circle cx="12" cy="12" r="3" fill="#666"/>` +
	`</svg>`

// DefaultIcon returns the embedded fallback icon as an SVG data URL.
func DefaultIcon() string {
	return "data:image/svg+xml," + url.PathEscape(defaultIconSVG)
}
