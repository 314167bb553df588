package playback

// State represents the controller's session state.
//
// Valid transitions:
//   - Idle    → Playing (Load)
//   - Idle    → Loaded  (Load with startPaused)
//   - Loaded  → Playing (Toggle)
//   - Playing → Paused  (Toggle)
//   - Paused  → Playing (Toggle)
//   - any     → Playing/Loaded (Load on track change)
//
// Toggle is a no-op from Idle. The session is terminal only at process
// teardown.
type State int

const (
	// Idle means no track has been loaded yet.
	Idle State = iota
	// Loaded means a track is set but paused at the start.
	Loaded
	Playing
	Paused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Loaded:
		return "Loaded"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// HasTrack returns true once a track is loaded.
func (s State) HasTrack() bool {
	return s != Idle
}
