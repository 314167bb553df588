// Package display derives human-readable labels from track filenames and
// resolves labels back to their originating filenames.
//
// The label mapping is many-to-one: several filenames can collapse to the
// same label once decorations are stripped, so the reverse lookup is a
// best-effort chain with an explicit outcome, never a bijection.
package display

import "strings"

// replacements are applied in order. Order matters: a later replacement
// must not re-introduce a pattern an earlier one removed.
var replacements = [...]struct {
	old string
	new string
}{
	{"%20", " "},
	{"_", " "},
	{"(MP3160K)", ""},
	{"(Official Music Video)", ""},
}

// Label converts a track filename into its display label by stripping the
// known decoration substrings and replacing encoding artifacts with spaces.
func Label(filename string) string {
	s := filename
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return s
}

// Outcome describes how a label was resolved back to a filename.
type Outcome int

const (
	// Resolved means exactly one candidate matched.
	Resolved Outcome = iota
	// Ambiguous means several candidates matched; the first one was chosen.
	Ambiguous
	// NotFound means no candidate matched; the caller's policy decides.
	NotFound
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "Resolved"
	case Ambiguous:
		return "Ambiguous"
	case NotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Resolve finds the filename a display label originated from.
//
// The chain is deterministic: first candidate whose trimmed label equals the
// trimmed input, then first candidate whose trimmed raw filename equals it.
// When several candidates produce the same label the first one wins and the
// outcome is Ambiguous. When nothing matches the result is "" with NotFound
// and the caller decides the fallback.
func Resolve(label string, candidates []string) (string, Outcome) {
	want := strings.TrimSpace(label)

	match, n := firstMatch(candidates, func(c string) bool {
		return strings.TrimSpace(Label(c)) == want
	})
	if n == 0 {
		match, n = firstMatch(candidates, func(c string) bool {
			return strings.TrimSpace(c) == want
		})
	}

	switch {
	case n == 1:
		return match, Resolved
	case n > 1:
		return match, Ambiguous
	default:
		return "", NotFound
	}
}

func firstMatch(candidates []string, pred func(string) bool) (string, int) {
	var first string
	count := 0
	for _, c := range candidates {
		if pred(c) {
			if count == 0 {
				first = c
			}
			count++
		}
	}
	return first, count
}
