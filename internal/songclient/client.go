// Package songclient provides a client for the song server: directory
// listings under /songs/, per-folder info.json metadata and the playback
// source paths derived from them.
package songclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shorewave/shorewave/internal/listing"
	"github.com/shorewave/shorewave/internal/urlpath"
)

// ErrNoMetadata is returned when a folder has no readable info.json.
var ErrNoMetadata = errors.New("album metadata not found")

// folderMarker is the path segment folder names follow in listing links.
const folderMarker = "songs"

// Client is a song server client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL (trailing slash ignored).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AlbumInfo is the metadata the server publishes per folder.
type AlbumInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Tracks fetches the folder's directory listing and returns its audio
// filenames in listing order, deduplicated.
func (c *Client) Tracks(ctx context.Context, folder string) ([]string, error) {
	reqURL := c.baseURL + "/songs/" + url.PathEscape(folder) + "/"

	resp, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	tracks, err := listing.Tracks(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}
	return tracks, nil
}

// Folders fetches the root listing and returns the folder names it links to.
func (c *Client) Folders(ctx context.Context) ([]string, error) {
	resp, err := c.get(ctx, c.baseURL+"/songs/")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	folders, err := listing.Folders(resp.Body, folderMarker)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}
	return folders, nil
}

// Metadata fetches the folder's info.json. A missing or malformed file is
// reported as ErrNoMetadata so callers can substitute defaults.
func (c *Client) Metadata(ctx context.Context, folder string) (*AlbumInfo, error) {
	reqURL := c.baseURL + "/songs/" + url.PathEscape(folder) + "/info.json"

	resp, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoMetadata
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var info AlbumInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoMetadata, err)
	}
	return &info, nil
}

// TrackURL composes the playback source for a track, forward slashes only
// with no repeated slashes, path segments escaped for the request line.
func (c *Client) TrackURL(folder, filename string) string {
	p := urlpath.Clean("/songs/" + escapeSegments(folder) + "/" + escapeSegments(filename))
	return c.baseURL + p
}

// CoverURL returns the folder's cover image path.
func (c *Client) CoverURL(folder string) string {
	return c.baseURL + urlpath.Clean("/songs/"+escapeSegments(folder)+"/cover.jpeg")
}

func (c *Client) get(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	return resp, nil
}

// escapeSegments escapes each slash-separated segment, keeping the slashes.
// Folder and filename values are stored decoded, so they must be re-escaped
// before going on a request line.
func escapeSegments(s string) string {
	parts := strings.Split(urlpath.Clean(s), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
