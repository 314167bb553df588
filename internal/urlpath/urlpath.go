// Package urlpath canonicalizes the href and path strings that come out of
// server directory listings so they can be compared and recomposed safely.
package urlpath

import (
	"net/url"
	"strings"
)

// Clean converts backslashes to forward slashes and collapses runs of
// slashes into one. It never decodes percent-escapes, which makes it safe
// for composing request paths.
func Clean(raw string) string {
	s := strings.ReplaceAll(raw, "\\", "/")
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}
	return s
}

// Normalize decodes percent-escapes exactly once and then cleans the result.
// If decoding fails (stray %, truncated escape), the raw string is cleaned
// unchanged rather than rejected. Normalize(Normalize(x)) == Normalize(x)
// for any input whose decoded form contains no further valid escapes, which
// is the case for every path produced by a single level of URL encoding.
func Normalize(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	return Clean(decoded)
}

// LastSegment normalizes the path, splits it on slashes, drops empty
// segments and returns the final one, or "" when nothing remains.
func LastSegment(path string) string {
	parts := Segments(path)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// Segments returns the non-empty slash-separated segments of the
// normalized path.
func Segments(path string) []string {
	var parts []string
	for _, p := range strings.Split(Normalize(path), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
