package display

import "testing"

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"encoded spaces", "My%20Great%20Song.mp3", "My Great Song.mp3"},
		{"underscores", "My_Great_Song.mp3", "My Great Song.mp3"},
		{"quality tag", "Song(MP3160K).mp3", "Song.mp3"},
		{"source tag", "Song (Official Music Video).mp3", "Song .mp3"},
		{"all decorations", "A_B%20C(MP3160K)(Official Music Video).mp3", "A B C.mp3"},
		{"plain", "Song.mp3", "Song.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.in); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolve_ByLabel(t *testing.T) {
	candidates := []string{"Other.mp3", "My_Song(MP3160K).mp3", "Third.mp3"}

	got, outcome := Resolve("My Song.mp3", candidates)

	if outcome != Resolved {
		t.Errorf("outcome = %v, want Resolved", outcome)
	}
	if got != "My_Song(MP3160K).mp3" {
		t.Errorf("Resolve() = %q, want My_Song(MP3160K).mp3", got)
	}
}

func TestResolve_RawFallback(t *testing.T) {
	// "Track_one.mp3" labels to "Track one.mp3", so only the raw pass can
	// match the literal filename.
	candidates := []string{"Track_one.mp3", "Track two.mp3"}

	got, outcome := Resolve("  Track_one.mp3 ", candidates)

	if outcome != Resolved {
		t.Errorf("outcome = %v, want Resolved", outcome)
	}
	if got != "Track_one.mp3" {
		t.Errorf("Resolve() = %q, want Track_one.mp3", got)
	}
}

func TestResolve_AmbiguousPicksFirst(t *testing.T) {
	// Both candidates collapse to the same label once decorations go.
	candidates := []string{"Song_A.mp3", "Song%20A.mp3"}

	got, outcome := Resolve("Song A.mp3", candidates)

	if outcome != Ambiguous {
		t.Errorf("outcome = %v, want Ambiguous", outcome)
	}
	if got != "Song_A.mp3" {
		t.Errorf("Resolve() = %q, want first candidate Song_A.mp3", got)
	}
}

func TestResolve_NotFound(t *testing.T) {
	got, outcome := Resolve("Missing.mp3", []string{"A.mp3", "B.mp3"})

	if outcome != NotFound {
		t.Errorf("outcome = %v, want NotFound", outcome)
	}
	if got != "" {
		t.Errorf("Resolve() = %q, want empty", got)
	}
}

func TestResolve_EmptyCandidates(t *testing.T) {
	got, outcome := Resolve("Anything.mp3", nil)

	if outcome != NotFound || got != "" {
		t.Errorf("Resolve() = (%q, %v), want (\"\", NotFound)", got, outcome)
	}
}
