// Package command defines the commands the UI surface emits into the
// engine and the dispatcher that applies them on a single goroutine. The
// core never reaches into presentation state; everything a control can do
// is expressible as one of these values, which keeps the engine testable
// without a rendering surface.
package command

// DefaultTrackIndex is the playlist index played when a selection cannot
// be resolved to a specific track. Named so the fallback is a policy that
// tests can assert on, not an accident of control flow.
const DefaultTrackIndex = 0

// Command is a request from the UI surface to the engine.
type Command interface {
	isCommand()
}

// SelectFolder loads the folder's playlist and starts its first track.
// Selecting the folder that is already current replays the first track
// instead of refetching the listing.
type SelectFolder struct {
	Folder string
}

// SelectTrack plays the track whose display label matches Label, resolved
// against the active playlist with the documented fallback chain.
type SelectTrack struct {
	Label string
}

// SelectIndex plays the track at the given playlist index.
type SelectIndex struct {
	Index int
}

// TogglePlay switches between playing and paused.
type TogglePlay struct{}

// Seek moves playback to a fraction of the track duration.
type Seek struct {
	Fraction float64
}

// SetVolume sets the volume on the 0-100 scale.
type SetVolume struct {
	Level int
}

// ToggleMute toggles between silence and the fixed restore level.
type ToggleMute struct{}

// Next advances to the next track in the playlist.
type Next struct{}

// Previous steps back to the previous track in the playlist.
type Previous struct{}

func (SelectFolder) isCommand() {}
func (SelectTrack) isCommand()  {}
func (SelectIndex) isCommand()  {}
func (TogglePlay) isCommand()   {}
func (Seek) isCommand()         {}
func (SetVolume) isCommand()    {}
func (ToggleMute) isCommand()   {}
func (Next) isCommand()         {}
func (Previous) isCommand()     {}
