package command

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/shorewave/shorewave/internal/display"
	"github.com/shorewave/shorewave/internal/playback"
)

// Dispatcher funnels all commands through one goroutine so every mutation
// of the playback session is serialized, matching the single-control-thread
// model the engine assumes.
type Dispatcher struct {
	ctrl *playback.Controller
	cmds chan Command
}

// NewDispatcher creates a dispatcher for the given controller.
func NewDispatcher(ctrl *playback.Controller) *Dispatcher {
	return &Dispatcher{
		ctrl: ctrl,
		cmds: make(chan Command, 16),
	}
}

// Submit queues a command for the control goroutine. It never blocks the
// caller; an overflowing queue drops the command and logs it.
func (d *Dispatcher) Submit(cmd Command) {
	select {
	case d.cmds <- cmd:
	default:
		log.Warn().Type("command", cmd).Msg("command queue full, dropping")
	}
}

// Run applies commands until ctx is cancelled. When the playback primitive
// reports the current track finished, the dispatcher advances to the next
// track; at the end of the playlist playback simply stops.
func (d *Dispatcher) Run(ctx context.Context, finished <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-d.cmds:
			d.Apply(ctx, cmd)
		case <-finished:
			if _, ok := d.ctrl.Next(); !ok {
				log.Debug().Msg("playlist finished")
			}
		}
	}
}

// Apply executes a single command synchronously. Exported so a caller that
// already owns the control goroutine (tests, a REPL loop) can bypass the
// queue.
func (d *Dispatcher) Apply(ctx context.Context, cmd Command) {
	switch cmd := cmd.(type) {
	case SelectFolder:
		d.selectFolder(ctx, cmd.Folder)
	case SelectTrack:
		d.selectTrack(cmd.Label)
	case SelectIndex:
		d.selectIndex(cmd.Index)
	case TogglePlay:
		d.ctrl.Toggle()
	case Seek:
		if !d.ctrl.SeekFraction(cmd.Fraction) {
			log.Debug().Float64("fraction", cmd.Fraction).Msg("seek ignored, duration unknown")
		}
	case SetVolume:
		d.ctrl.SetVolume(cmd.Level)
	case ToggleMute:
		d.ctrl.ToggleMute()
	case Next:
		d.ctrl.Next()
	case Previous:
		d.ctrl.Previous()
	default:
		log.Warn().Type("command", cmd).Msg("unknown command")
	}
}

func (d *Dispatcher) selectFolder(ctx context.Context, folder string) {
	// Re-selecting the current folder replays its first track without a
	// refetch.
	if folder == d.ctrl.Folder() {
		d.selectIndex(DefaultTrackIndex)
		return
	}

	pl, err := d.ctrl.LoadFolder(ctx, folder)
	if err != nil {
		if !errors.Is(err, playback.ErrSuperseded) {
			log.Error().Err(err).Str("folder", folder).Msg("folder load failed")
		}
		return
	}
	if pl.IsEmpty() {
		log.Info().Str("folder", folder).Msg("folder has no tracks")
		return
	}
	d.selectIndex(DefaultTrackIndex)
}

func (d *Dispatcher) selectTrack(label string) {
	pl := d.ctrl.Playlist()
	if pl == nil || pl.IsEmpty() {
		return
	}

	candidates := pl.Tracks()
	track, outcome := display.Resolve(label, candidates)
	if outcome == display.NotFound {
		// Known ambiguity of the label mapping: fall back to the policy
		// index rather than failing the click.
		track = candidates[DefaultTrackIndex]
	}

	if err := d.ctrl.Load(pl.Folder(), track, false); err != nil {
		log.Error().Err(err).Str("track", track).Msg("track load failed")
	}
}

func (d *Dispatcher) selectIndex(index int) {
	pl := d.ctrl.Playlist()
	if pl == nil {
		return
	}
	track, ok := pl.At(index)
	if !ok {
		return
	}
	if err := d.ctrl.Load(pl.Folder(), track, false); err != nil {
		log.Error().Err(err).Str("track", track).Msg("track load failed")
	}
}

// Controller exposes the underlying controller for status queries.
func (d *Dispatcher) Controller() *playback.Controller {
	return d.ctrl
}
