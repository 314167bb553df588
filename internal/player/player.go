package player

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// Player plays mp3 sources through the system speaker. HTTP sources are
// fetched to a temporary file first so the decoder can seek.
type Player struct {
	state       State
	src         string
	ctrl        *beep.Ctrl
	streamer    beep.StreamSeekCloser
	format      beep.Format
	volume      *effects.Volume
	volumeLevel float64
	file        *os.File
	tmpPath     string
	finishedCh  chan struct{}
	httpClient  *http.Client
}

var speakerInitialized bool

// New creates a stopped player at full volume.
func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 1,
		finishedCh:  make(chan struct{}, 1),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Play stops any current playback, loads src and starts playing it.
func (p *Player) Play(src string) error {
	p.Stop()

	f, tmpPath, err := p.open(src)
	if err != nil {
		return err
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		removeTemp(tmpPath)
		return fmt.Errorf("decode %s: %w", src, err)
	}

	if !speakerInitialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			f.Close()
			removeTemp(tmpPath)
			return fmt.Errorf("init speaker: %w", err)
		}
		speakerInitialized = true
	}

	p.src = src
	p.file = f
	p.tmpPath = tmpPath
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: streamer, Paused: false}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}
	p.state = Playing

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
	})))

	return nil
}

// open returns a seekable file for the source. HTTP(S) sources are
// downloaded to a temp file; the second return is its path for cleanup.
func (p *Player) open(src string) (*os.File, string, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		f, err := os.Open(src)
		if err != nil {
			return nil, "", err
		}
		return f, "", nil
	}

	resp, err := p.httpClient.Get(src)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch %s: unexpected status %s", src, resp.Status)
	}

	f, err := os.CreateTemp("", "shorewave-*.mp3")
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, "", fmt.Errorf("download %s: %w", src, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, "", err
	}
	return f, f.Name(), nil
}

// Stop stops playback and releases the decoder and any temp file.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	removeTemp(p.tmpPath)
	p.tmpPath = ""

	p.ctrl = nil
	p.volume = nil
	p.src = ""
	p.state = Stopped
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Toggle toggles between playing and paused states.
func (p *Player) Toggle() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

// State returns the current playback state.
func (p *Player) State() State { return p.state }

// Source returns the source of the loaded track.
func (p *Player) Source() string { return p.src }

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Position())
}

// Duration returns the loaded track's total length, or 0 when nothing is
// loaded.
func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// SeekTo moves playback to an absolute position, clamped to track bounds.
func (p *Player) SeekTo(pos time.Duration) {
	if p.streamer == nil || p.state == Stopped {
		return
	}

	n := p.format.SampleRate.N(pos)
	n = max(n, 0)
	if maxPos := p.streamer.Len(); n > maxPos {
		n = maxPos
	}

	speaker.Lock()
	if p.streamer != nil {
		_ = p.streamer.Seek(n)
	}
	speaker.Unlock()
}

// FinishedChan signals when the current track has played to the end.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}

func removeTemp(path string) {
	if path != "" {
		os.Remove(path)
	}
}
