package player

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_IsActive(t *testing.T) {
	if Stopped.IsActive() {
		t.Error("Stopped.IsActive() = true, want false")
	}
	if !Playing.IsActive() {
		t.Error("Playing.IsActive() = false, want true")
	}
	if !Paused.IsActive() {
		t.Error("Paused.IsActive() = false, want true")
	}
}

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{0, -10},
		{-0.5, -10},
		{1, 0},
		{2, 0},
		{0.5, -1},
		{0.25, -2},
	}
	for _, tt := range tests {
		if got := levelToVolume(tt.level); got != tt.want {
			t.Errorf("levelToVolume(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMock_Toggle(t *testing.T) {
	m := NewMock()

	// Toggle from Stopped is a no-op.
	m.Toggle()
	if m.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", m.State())
	}

	if err := m.Play("http://x/songs/jazz/a.mp3"); err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	m.Toggle()
	if m.State() != Paused {
		t.Errorf("State() = %v, want Paused", m.State())
	}
	m.Toggle()
	if m.State() != Playing {
		t.Errorf("State() = %v, want Playing", m.State())
	}
}
