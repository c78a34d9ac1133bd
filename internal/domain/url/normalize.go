// Package url provides URL manipulation utilities for bookmarks and favicons.
package url

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when a bookmark URL has no scheme or host.
var ErrInvalidURL = errors.New("invalid url")

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if hasScheme(input) {
		return input
	}

	if LooksLikeURL(input) {
		return "https://" + input
	}

	return input
}

// LooksLikeURL checks if the input appears to be a URL (not free text).
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasScheme(input) {
		return true
	}
	// Contains a dot and no spaces = likely a URL
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// Validate checks that rawURL is an absolute URL with a host.
func Validate(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.Join(ErrInvalidURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

// ExtractDomain returns the normalized domain of rawURL: the lowercased
// hostname with a leading "www." removed, so youtube.com and www.youtube.com
// map to the same value.
//
// URLs with a scheme but no host (mailto:, javascript:, data:) have no
// domain and yield "". Inputs without a scheme, or that fail to parse, fall
// back to plain string handling: a leading http(s) scheme is stripped and
// everything from the first "/" on is dropped.
func ExtractDomain(rawURL string) string {
	var domain string

	parsed, err := url.Parse(rawURL)
	switch {
	case err == nil && parsed.Host != "":
		domain = strings.ToLower(parsed.Hostname())
	case err == nil && parsed.Scheme != "" && !isHostPort(parsed):
		return ""
	default:
		domain = fallbackDomain(rawURL)
	}

	return strings.TrimPrefix(domain, "www.")
}

// isHostPort reports whether a scheme-only parse is really "host:port",
// e.g. "localhost:3000" parsed with "localhost" as the scheme.
func isHostPort(parsed *url.URL) bool {
	port, _, _ := strings.Cut(parsed.Opaque, "/")
	if port == "" {
		return false
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func fallbackDomain(rawURL string) string {
	rest := rawURL
	switch {
	case strings.HasPrefix(rest, "https://"):
		rest = strings.TrimPrefix(rest, "https://")
	case strings.HasPrefix(rest, "http://"):
		rest = strings.TrimPrefix(rest, "http://")
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

func hasScheme(input string) bool {
	switch {
	case strings.HasPrefix(input, "http://"),
		strings.HasPrefix(input, "https://"),
		strings.HasPrefix(input, "file://"),
		strings.HasPrefix(input, "chrome://"),
		strings.HasPrefix(input, "about:"):
		return true
	}
	return false
}
