package playlist

// Next returns the track after current, or false at the end of the
// playlist. There is no wraparound. When current is not in the playlist
// (stale playback source after a folder switch) it also returns false,
// never an error.
func (p *Playlist) Next(current string) (string, bool) {
	i, ok := p.index[current]
	if !ok {
		return "", false
	}
	return p.At(i + 1)
}

// Previous returns the track before current, or false at the start of the
// playlist or when current is not present.
func (p *Playlist) Previous(current string) (string, bool) {
	i, ok := p.index[current]
	if !ok {
		return "", false
	}
	return p.At(i - 1)
}
