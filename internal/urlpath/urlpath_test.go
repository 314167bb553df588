package urlpath

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"backslashes", `a\b\c`, "a/b/c"},
		{"double slashes", "a//b///c", "a/b/c"},
		{"mixed", `a\\b//c`, "a/b/c"},
		{"already clean", "/songs/jazz/track.mp3", "/songs/jazz/track.mp3"},
		{"keeps escapes", "a%20b/c", "a%20b/c"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"decodes spaces", "a%20b.mp3", "a b.mp3"},
		{"backslashes and runs", `a\b//c`, "a/b/c"},
		{"plain", "a/b/c", "a/b/c"},
		{"bad escape falls back", "100%.mp3", "100%.mp3"},
		{"truncated escape falls back", "a%2", "a%2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		`a\b//c`,
		"a/b/c",
		"/songs/jazz/My%20Song.mp3",
		"100%.mp3",
		"",
		"no-slashes",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestLastSegment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "/songs/jazz/track.mp3", "track.mp3"},
		{"trailing slash", "/songs/jazz/", "jazz"},
		{"encoded", "/songs/jazz/My%20Song.mp3", "My Song.mp3"},
		{"backslashes", `songs\jazz\track.mp3`, "track.mp3"},
		{"root only", "/", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastSegment(tt.in); got != tt.want {
				t.Errorf("LastSegment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
