package playback

// StateChange is emitted when the session state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a different track loads.
//
// Emitted by Load (and therefore by Next/Previous, which load the adjacent
// track). Toggle emits only StateChange: pausing is not a track change.
type TrackChange struct {
	Folder string
	Track  string
	Index  int
}

// PositionChange is emitted after a seek.
type PositionChange struct {
	Progress Progress
}

// ErrorEvent is emitted when an operation against the playback primitive
// or the song server fails.
type ErrorEvent struct {
	Operation string // e.g. "load", "folder"
	Err       error
}
