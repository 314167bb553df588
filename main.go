package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/shorewave/shorewave/internal/catalog"
	"github.com/shorewave/shorewave/internal/command"
	"github.com/shorewave/shorewave/internal/config"
	"github.com/shorewave/shorewave/internal/display"
	"github.com/shorewave/shorewave/internal/playback"
	"github.com/shorewave/shorewave/internal/player"
	"github.com/shorewave/shorewave/internal/songclient"
)

func main() {
	serverFlag := flag.String("server", "", "song server base URL (overrides config)")
	folderFlag := flag.String("folder", "", "folder to load at startup (overrides config)")
	verbose := flag.Bool("verbose", false, "log to stderr")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *serverFlag != "" {
		cfg.ServerURL = strings.TrimSuffix(*serverFlag, "/")
	}
	if *folderFlag != "" {
		cfg.DefaultFolder = *folderFlag
	}

	if err := initLogging(cfg, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}

	client := songclient.New(cfg.ServerURL)
	cat := catalog.New(client)
	p := player.New()
	ctrl := playback.New(p, client, cfg.DefaultVolume)
	defer ctrl.Close()
	disp := command.NewDispatcher(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go disp.Run(ctx, p.FinishedChan())

	sub := ctrl.Subscribe()
	go printEvents(sub)

	if cfg.DefaultFolder != "" {
		disp.Submit(command.SelectFolder{Folder: cfg.DefaultFolder})
	}

	repl(ctx, disp, cat)
}

func initLogging(cfg *config.Config, verbose bool) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var writers []io.Writer
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    1,
			MaxBackups: 2,
		})
	}
	if verbose {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if len(writers) == 0 {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return nil
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
	return nil
}

func printEvents(sub *playback.Subscription) {
	for {
		select {
		case e := <-sub.TrackChanged:
			fmt.Printf("now playing: %s [%s]\n", display.Label(e.Track), e.Folder)
		case e := <-sub.Error:
			fmt.Printf("error during %s: %v\n", e.Operation, e.Err)
		case <-sub.Done:
			return
		}
	}
}

const helpText = `commands:
  albums              list album folders with titles
  open <folder>       load a folder and play its first track
  list                show the current playlist
  play <n|label>      play a track by index or display label
  pause               toggle play/pause
  next / prev         adjacent track, stops at playlist boundaries
  seek <0-100>        seek to a percentage of the track
  vol <0-100>         set volume
  mute                toggle mute (unmute restores 20%)
  status              show state, track and position
  quit`

func repl(ctx context.Context, disp *command.Dispatcher, cat *catalog.Catalog) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(`shorewave - type "help" for commands`)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		arg := strings.Join(fields[1:], " ")

		switch fields[0] {
		case "albums":
			entries, err := cat.Entries(ctx)
			if err != nil {
				fmt.Printf("albums unavailable: %v\n", err)
				continue
			}
			for _, e := range entries {
				if e.Description != "" {
					fmt.Printf("  %-20s %s - %s\n", e.Folder, e.Title, e.Description)
				} else {
					fmt.Printf("  %-20s %s\n", e.Folder, e.Title)
				}
			}
		case "open":
			if arg == "" {
				fmt.Println("usage: open <folder>")
				continue
			}
			disp.Submit(command.SelectFolder{Folder: arg})
		case "list":
			pl := disp.Controller().Playlist()
			if pl == nil || pl.IsEmpty() {
				fmt.Println("no playlist loaded")
				continue
			}
			current := disp.Controller().CurrentTrack()
			for i, track := range pl.Tracks() {
				marker := "  "
				if track == current {
					marker = "> "
				}
				fmt.Printf("%s%2d  %s\n", marker, i, display.Label(track))
			}
		case "play":
			if arg == "" {
				disp.Submit(command.TogglePlay{})
			} else if n, err := strconv.Atoi(arg); err == nil {
				disp.Submit(command.SelectIndex{Index: n})
			} else {
				disp.Submit(command.SelectTrack{Label: arg})
			}
		case "pause":
			disp.Submit(command.TogglePlay{})
		case "next":
			disp.Submit(command.Next{})
		case "prev":
			disp.Submit(command.Previous{})
		case "seek":
			pct, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				fmt.Println("usage: seek <0-100>")
				continue
			}
			disp.Submit(command.Seek{Fraction: pct / 100})
		case "vol":
			level, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: vol <0-100>")
				continue
			}
			disp.Submit(command.SetVolume{Level: level})
		case "mute":
			disp.Submit(command.ToggleMute{})
		case "status":
			ctrl := disp.Controller()
			track := ctrl.CurrentTrack()
			if track == "" {
				fmt.Printf("%s\n", ctrl.State())
				continue
			}
			fmt.Printf("%s  %s  %s  vol %d%%\n",
				ctrl.State(), display.Label(track), ctrl.Progress(), ctrl.VolumePercent())
		case "help":
			fmt.Println(helpText)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, try help\n", fields[0])
		}
	}
}
