// Package catalog discovers the available album folders and their metadata.
package catalog

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/shorewave/shorewave/internal/songclient"
)

// Entry describes one album folder.
type Entry struct {
	Folder      string
	Title       string
	Description string
	CoverURL    string
}

// Catalog enumerates folders on the song server.
type Catalog struct {
	client *songclient.Client
}

// New creates a catalog backed by the given client.
func New(client *songclient.Client) *Catalog {
	return &Catalog{client: client}
}

// Folders returns the folder names from the root listing, in listing order.
func (c *Catalog) Folders(ctx context.Context) ([]string, error) {
	return c.client.Folders(ctx)
}

// Entry loads one folder's metadata. Missing or malformed info.json is not
// an error: the entry falls back to the folder name as title and an empty
// description, keeping the cover path convention either way.
func (c *Catalog) Entry(ctx context.Context, folder string) Entry {
	e := Entry{
		Folder:   folder,
		Title:    folder,
		CoverURL: c.client.CoverURL(folder),
	}

	info, err := c.client.Metadata(ctx, folder)
	if err != nil {
		log.Debug().Err(err).Str("folder", folder).Msg("album metadata unavailable, using defaults")
		return e
	}

	if info.Title != "" {
		e.Title = info.Title
	}
	e.Description = info.Description
	return e
}

// Entries lists all folders with their metadata. One folder's missing
// metadata never fails the catalog build; only a failed root listing does.
func (c *Catalog) Entries(ctx context.Context) ([]Entry, error) {
	folders, err := c.Folders(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(folders))
	for _, folder := range folders {
		entries = append(entries, c.Entry(ctx, folder))
	}
	return entries, nil
}
