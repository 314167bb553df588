// Package playback owns the single active playback session: the current
// folder and playlist, the session state machine, transport controls and
// the derived position views.
package playback

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shorewave/shorewave/internal/player"
	"github.com/shorewave/shorewave/internal/playlist"
	"github.com/shorewave/shorewave/internal/songclient"
	"github.com/shorewave/shorewave/internal/urlpath"
)

// MuteRestoreLevel is the fixed level unmuting restores to. The pre-mute
// level is deliberately not remembered: muting at 75% and unmuting lands
// at 20%, a lossy restore kept as observable behavior.
const MuteRestoreLevel = 0.20

// ErrSuperseded is returned when a folder load finishes after a newer
// selection has already been requested. The stale result is discarded;
// the last-requested selection wins.
var ErrSuperseded = errors.New("folder load superseded by a newer selection")

// Controller is the session's single mutable source of truth for what is
// playing now. All mutations are expected on one control goroutine; the
// mutex only guards against incidental cross-goroutine reads.
type Controller struct {
	mu       sync.RWMutex
	player   player.Interface
	client   *songclient.Client
	playlist *playlist.Playlist
	folder   string
	state    State
	volume   float64 // 0.0 to 1.0
	muted    bool

	// generation detects out-of-order folder fetch completion.
	generation uint64

	subs   []*Subscription
	subsMu sync.RWMutex
}

// New creates a controller in the Idle state. volumePercent is the initial
// volume on the 0-100 scale.
func New(p player.Interface, client *songclient.Client, volumePercent int) *Controller {
	c := &Controller{
		player: p,
		client: client,
		state:  Idle,
		volume: float64(volumePercent) / 100,
	}
	p.SetVolume(c.volume)
	return c
}

// LoadFolder fetches the folder's listing and installs a freshly built
// playlist, discarding the previous one wholesale. A fetch failure is
// treated as an empty listing, not an error. When a newer LoadFolder call
// was made while this one's fetch was in flight, the result is discarded
// and ErrSuperseded is returned.
func (c *Controller) LoadFolder(ctx context.Context, folder string) (*playlist.Playlist, error) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	tracks, err := c.client.Tracks(ctx, folder)
	if err != nil {
		log.Warn().Err(err).Str("folder", folder).Msg("folder listing unavailable, treating as empty")
		tracks = nil
	}

	pl, err := playlist.Build(folder, tracks)
	if err != nil {
		// Duplicates past the parser are an upstream bug; fail loudly.
		return nil, err
	}

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return nil, ErrSuperseded
	}
	c.playlist = pl
	c.folder = folder
	c.mu.Unlock()
	return pl, nil
}

// Load composes the playback source for folder and track, starts it and
// moves the session to Playing, or to Loaded when startPaused is set.
func (c *Controller) Load(folder, track string, startPaused bool) error {
	src := c.client.TrackURL(folder, track)

	if err := c.player.Play(src); err != nil {
		c.emitError("load", err)
		return err
	}
	c.player.SetVolume(c.currentVolume())

	next := Playing
	if startPaused {
		c.player.Pause()
		next = Loaded
	}
	c.setState(next)

	c.mu.Lock()
	c.folder = folder
	pl := c.playlist
	c.mu.Unlock()

	index := -1
	if pl != nil {
		if i, ok := pl.IndexOf(track); ok {
			index = i
		}
	}
	c.emitTrack(TrackChange{Folder: folder, Track: track, Index: index})
	return nil
}

// Toggle switches between Playing and Paused. A track loaded paused starts
// playing. From Idle it is a no-op.
func (c *Controller) Toggle() {
	switch c.State() {
	case Playing:
		c.player.Pause()
		c.setState(Paused)
	case Paused, Loaded:
		c.player.Resume()
		c.setState(Playing)
	case Idle:
		// Nothing loaded, nothing to toggle
	}
}

// SeekFraction seeks to the given fraction of the track duration, clamped
// to [0, 1]. When the duration is unknown or not positive the call is an
// idempotent no-op and returns false.
func (c *Controller) SeekFraction(fraction float64) bool {
	dur := c.player.Duration()
	if dur <= 0 {
		return false
	}

	f := math.Min(math.Max(fraction, 0), 1)
	c.player.SeekTo(time.Duration(f * float64(dur)))
	c.emitPosition()
	return true
}

// SetVolume sets the volume from a 0-100 level. The stored level is
// level/100; range validation beyond that is the caller's responsibility.
// Setting a positive volume clears the muted flag.
func (c *Controller) SetVolume(level int) {
	v := float64(level) / 100

	c.mu.Lock()
	c.volume = v
	if v > 0 {
		c.muted = false
	}
	c.mu.Unlock()

	c.player.SetVolume(v)
}

// ToggleMute toggles between silence and the fixed restore level, and
// returns the new volume percent. Unmuting always lands on
// MuteRestoreLevel regardless of the level before muting.
func (c *Controller) ToggleMute() int {
	c.mu.Lock()
	if c.muted {
		c.muted = false
		c.volume = MuteRestoreLevel
	} else {
		c.muted = true
		c.volume = 0
	}
	v := c.volume
	c.mu.Unlock()

	c.player.SetVolume(v)
	return int(math.Round(v * 100))
}

// Next loads the track after the current one in the active playlist.
// At the end of the playlist, or when the current source is no longer in
// the playlist (stale state after a folder switch), it returns false and
// changes nothing.
func (c *Controller) Next() (string, bool) {
	return c.step((*playlist.Playlist).Next)
}

// Previous loads the track before the current one, with the same boundary
// and staleness behavior as Next.
func (c *Controller) Previous() (string, bool) {
	return c.step((*playlist.Playlist).Previous)
}

func (c *Controller) step(adjacent func(*playlist.Playlist, string) (string, bool)) (string, bool) {
	c.mu.RLock()
	pl := c.playlist
	c.mu.RUnlock()
	if pl == nil {
		return "", false
	}

	current := urlpath.LastSegment(c.player.Source())
	track, ok := adjacent(pl, current)
	if !ok {
		return "", false
	}
	if err := c.Load(pl.Folder(), track, false); err != nil {
		return "", false
	}
	return track, true
}

// State returns the session state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Folder returns the current folder, or "" before the first selection.
func (c *Controller) Folder() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.folder
}

// Playlist returns the active playlist, or nil before the first folder
// load.
func (c *Controller) Playlist() *playlist.Playlist {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playlist
}

// CurrentTrack returns the filename of the loaded track, derived from the
// playback primitive's source, or "" when nothing is loaded.
func (c *Controller) CurrentTrack() string {
	return urlpath.LastSegment(c.player.Source())
}

// VolumePercent returns the stored volume on the 0-100 scale.
func (c *Controller) VolumePercent() int {
	return int(math.Round(c.currentVolume() * 100))
}

// Muted reports whether the session is muted.
func (c *Controller) Muted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.muted
}

// Progress derives the transport display and seek-bar fraction from the
// primitive's position and duration.
func (c *Controller) Progress() Progress {
	return progressOf(c.player.Position(), c.player.Duration())
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Close stops playback and closes all subscriptions.
func (c *Controller) Close() {
	c.player.Stop()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()
}

func (c *Controller) currentVolume() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.volume
}

func (c *Controller) setState(next State) {
	c.mu.Lock()
	prev := c.state
	c.state = next
	c.mu.Unlock()

	if prev == next {
		return
	}
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendState(StateChange{Previous: prev, Current: next})
	}
	c.subsMu.RUnlock()
}

func (c *Controller) emitTrack(e TrackChange) {
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendTrack(e)
	}
	c.subsMu.RUnlock()
}

func (c *Controller) emitPosition() {
	e := PositionChange{Progress: c.Progress()}
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendPosition(e)
	}
	c.subsMu.RUnlock()
}

func (c *Controller) emitError(op string, err error) {
	e := ErrorEvent{Operation: op, Err: err}
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
	c.subsMu.RUnlock()
}
