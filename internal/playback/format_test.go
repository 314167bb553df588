package playback

import (
	"math"
	"regexp"
	"testing"
	"time"
)

var timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "00:00"},
		{"negative", -1, "00:00"},
		{"nan", math.NaN(), "00:00"},
		{"seconds only", 42, "00:42"},
		{"rounds down", 59.4, "00:59"},
		{"rounding crosses minute boundary", 59.6, "01:00"},
		{"minutes and seconds", 125, "02:05"},
		{"hour not wrapped", 3600, "60:00"},
		{"beyond an hour", 3725, "62:05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.in); got != tt.want {
				t.Errorf("FormatTime(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTime_AlwaysMatchesPattern(t *testing.T) {
	inputs := []float64{-100, -1, 0, 0.4, 59.6, 61, 3599, 3600, 86400, math.NaN(), math.Inf(-1), math.Inf(1)}
	for _, in := range inputs {
		if got := FormatTime(in); !timeRe.MatchString(got) {
			t.Errorf("FormatTime(%v) = %q, does not match MM:SS", in, got)
		}
	}
}

func TestProgressOf(t *testing.T) {
	p := progressOf(30*time.Second, 2*time.Minute)

	if p.Elapsed != "00:30" || p.Total != "02:00" {
		t.Errorf("progressOf = %v", p)
	}
	if p.Fraction != 0.25 {
		t.Errorf("Fraction = %v, want 0.25", p.Fraction)
	}
	if p.String() != "00:30/02:00" {
		t.Errorf("String() = %q, want 00:30/02:00", p.String())
	}
}

func TestProgressOf_UnknownDuration(t *testing.T) {
	p := progressOf(30*time.Second, 0)

	if p.Total != "00:00" {
		t.Errorf("Total = %q, want 00:00", p.Total)
	}
	if p.Fraction != 0 {
		t.Errorf("Fraction = %v, want 0", p.Fraction)
	}
}
