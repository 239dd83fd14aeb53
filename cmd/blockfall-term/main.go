package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/term"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for the piece bag. Zero picks one.")
	mute := flag.Bool("mute", false, "Disable sound.")
	volume := flag.Float64("volume", audio.DefaultVolume, "Master volume from 0 (silent) to 1.")
	logPath := flag.String("log", "", "Write logs and an event trace to this file.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Time between scheduler frames.")
	hold := flag.Duration("soft-drop-hold", term.DefaultSoftDropHold, "How long one soft-drop key press keeps the drop held.")
	flag.Parse()

	// The screen owns stderr while the game runs.
	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "", log.Lmicroseconds)
	}

	cfg := game.DefaultConfig()
	cfg.Seed = *seed

	var opts []game.Option
	if *logPath != "" {
		opts = append(opts, game.WithObserver(game.NewTraceObserver(logger)))
	}
	if !*mute {
		player := audio.NewPlayer(*volume)
		if err := player.Initialize(); err != nil {
			logger.Printf("Sound disabled: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, game.WithObserver(player))
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	stats := run(screen, cfg, opts, *frame, *hold, logger)
	screen.Fini()

	log.Printf("Lines: %d, pieces: %d\n", stats.LinesCleared, stats.Locked)
}

// run plays one game on screen and returns its final statistics. After a
// game over the board stays up until a key is pressed.
func run(screen tcell.Screen, cfg game.Config, opts []game.Option, frame, hold time.Duration, logger *log.Logger) game.Stats {
	engine := game.NewEngine(cfg, opts...)
	scheduler := game.NewScheduler(engine)
	renderer := term.NewRenderer(screen, 2, 1)
	scheduler.SetFrameHook(func() { renderer.Draw(engine) })

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	intents := make(chan game.Intent, 16)
	forwarded := make(chan struct{})
	go func() {
		term.Forward(ctx, events, term.NewKeys(hold), intents, frame, screen.Sync)
		close(forwarded)
	}()

	renderer.Draw(engine)
	logger.Println("Game started.")
	scheduler.Run(ctx, frame, intents)
	cancel()
	<-forwarded

	stats := scheduler.GetStats()
	logger.Printf("Game finished after %d frames, %d intents.\n", stats.Frames, stats.IntentsApplied)

	if engine.GameOver() {
		renderer.Draw(engine)
		for ev := range events {
			if _, ok := ev.(*tcell.EventKey); ok {
				break
			}
		}
	}
	return engine.Stats()
}
