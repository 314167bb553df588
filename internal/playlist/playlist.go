// Package playlist holds the ordered track list for one folder and the
// navigation over it.
package playlist

import (
	"errors"
	"fmt"

	"github.com/shorewave/shorewave/internal/urlpath"
)

// ErrDuplicateTrack is returned by Build when two entries normalize to the
// same filename. The listing parser already deduplicates, so hitting this
// signals an upstream bug rather than bad user data, and it fails loudly
// instead of silently dropping an entry.
var ErrDuplicateTrack = errors.New("duplicate track in playlist")

// Playlist is an ordered collection of unique track filenames associated
// with exactly one folder. It is rebuilt wholesale on every folder
// selection, never patched incrementally.
type Playlist struct {
	folder string
	tracks []string
	index  map[string]int
}

// Build creates a playlist for folder from the given tracks, preserving
// their order. Uniqueness is re-validated on the decoded form of each
// filename; a violation returns ErrDuplicateTrack.
func Build(folder string, tracks []string) (*Playlist, error) {
	p := &Playlist{
		folder: folder,
		tracks: make([]string, 0, len(tracks)),
		index:  make(map[string]int, len(tracks)),
	}
	seen := make(map[string]struct{}, len(tracks))
	for i, track := range tracks {
		key := urlpath.Normalize(track)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q at index %d", ErrDuplicateTrack, track, i)
		}
		seen[key] = struct{}{}
		p.index[track] = len(p.tracks)
		p.tracks = append(p.tracks, track)
	}
	return p, nil
}

// Folder returns the folder this playlist was built for.
func (p *Playlist) Folder() string {
	return p.folder
}

// IndexOf returns the position of filename, or false if it is not present.
func (p *Playlist) IndexOf(filename string) (int, bool) {
	i, ok := p.index[filename]
	return i, ok
}

// At returns the track at index, or false if index is out of bounds.
func (p *Playlist) At(index int) (string, bool) {
	if index < 0 || index >= len(p.tracks) {
		return "", false
	}
	return p.tracks[index], true
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IsEmpty returns true when the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return len(p.tracks) == 0
}

// Tracks returns a copy of all track filenames in order.
func (p *Playlist) Tracks() []string {
	out := make([]string, len(p.tracks))
	copy(out, p.tracks)
	return out
}
