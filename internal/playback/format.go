package playback

import (
	"fmt"
	"math"
	"time"
)

// FormatTime renders a duration in seconds as "MM:SS". Negative or
// non-numeric input renders as "00:00". Seconds are rounded to the nearest
// whole second before splitting, so 59.6 crosses into "01:00". There is no
// hour component: durations of an hour or more keep counting minutes.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "00:00"
	}
	total := int(math.Round(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Progress is a derived view of the playback position. It is recomputed
// from the primitive on demand and never stored as independent state.
type Progress struct {
	Elapsed  string
	Total    string
	Fraction float64
}

// String renders the "MM:SS/MM:SS" transport display.
func (p Progress) String() string {
	return p.Elapsed + "/" + p.Total
}

// progressOf derives the display strings and seek-bar fraction from a
// position and duration. Unknown duration yields fraction zero.
func progressOf(pos, dur time.Duration) Progress {
	p := Progress{
		Elapsed: FormatTime(pos.Seconds()),
		Total:   FormatTime(dur.Seconds()),
	}
	if dur > 0 {
		f := float64(pos) / float64(dur)
		p.Fraction = math.Min(math.Max(f, 0), 1)
	}
	return p
}
