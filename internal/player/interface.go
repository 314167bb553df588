// Package player is the playback primitive boundary: an opaque device that
// can play one source at a time, with pause/seek/volume and a finished
// notification. The engine above it never sees decoding details.
package player

import "time"

// State represents the primitive's playback state.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// Interface defines the playback primitive contract for dependency
// injection and testing.
type Interface interface {
	// Play loads and starts the given source (URL or local path),
	// replacing whatever was playing before.
	Play(src string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State

	// Source returns the source passed to the last Play, or "" when
	// nothing has been loaded.
	Source() string

	Position() time.Duration
	// Duration returns the total length of the loaded source, or 0 when
	// unknown.
	Duration() time.Duration
	// SeekTo moves the position to an absolute offset, clamped to the
	// source's length. No-op when nothing is loaded.
	SeekTo(pos time.Duration)

	// SetVolume sets the output level in [0, 1]; out-of-range values are
	// clamped. Volume returns the stored level.
	SetVolume(level float64)
	Volume() float64

	// FinishedChan signals when the current source has played to the end.
	FinishedChan() <-chan struct{}
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
