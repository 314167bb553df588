// Package listing extracts track filenames and folder names from
// server-rendered directory-listing HTML.
//
// Listings are whatever the file server happens to emit (nginx autoindex,
// http.FileServer, caddy browse), so the parser only relies on anchor tags:
// every <a href> is a candidate, everything else is markup noise.
package listing

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/shorewave/shorewave/internal/urlpath"
)

// audioExt is the only playable extension the song server exposes.
const audioExt = ".mp3"

// Tracks scans all hyperlink targets in the listing document and returns
// the audio filenames in first-seen order. Each href is normalized, kept
// only if its lowercased path ends with the audio extension, and reduced to
// its last path segment. Duplicates are dropped after the first occurrence
// and candidates with no extractable filename are skipped silently.
func Tracks(r io.Reader) ([]string, error) {
	hrefs, err := anchorTargets(r)
	if err != nil {
		return nil, err
	}

	tracks := make([]string, 0, len(hrefs))
	seen := make(map[string]struct{}, len(hrefs))
	for _, href := range hrefs {
		norm := urlpath.Normalize(href)
		if !strings.HasSuffix(strings.ToLower(norm), audioExt) {
			continue
		}
		file := urlpath.LastSegment(norm)
		if file == "" {
			continue
		}
		if _, dup := seen[file]; dup {
			continue
		}
		seen[file] = struct{}{}
		tracks = append(tracks, file)
	}
	return tracks, nil
}

// Folders returns the deduplicated folder names found in the listing, in
// first-seen order. A folder name is the path segment immediately following
// the marker segment (e.g. "songs") in each matching link. The "." and ".."
// sentinels that some servers emit are excluded.
func Folders(r io.Reader, marker string) ([]string, error) {
	hrefs, err := anchorTargets(r)
	if err != nil {
		return nil, err
	}

	var folders []string
	seen := make(map[string]struct{})
	for _, href := range hrefs {
		parts := urlpath.Segments(href)
		name := segmentAfter(parts, marker)
		if name == "" || name == "." || name == ".." {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		folders = append(folders, name)
	}
	return folders, nil
}

// anchorTargets returns the href of every anchor in document order.
// html.Parse is lenient, so an error here means the reader itself failed.
func anchorTargets(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var hrefs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					hrefs = append(hrefs, attr.Val)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return hrefs, nil
}

func segmentAfter(parts []string, marker string) string {
	for i, p := range parts {
		if p == marker && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
