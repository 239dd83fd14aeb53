package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/game"
	debugui_ebiten "github.com/plus3/blockfall/game/debugui/ebiten"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for the piece bag. Zero picks one.")
	debug := flag.Bool("debug", false, "Show the ImGui inspector windows.")
	mute := flag.Bool("mute", false, "Disable sound.")
	volume := flag.Float64("volume", audio.DefaultVolume, "Master volume from 0 (silent) to 1.")
	trace := flag.Bool("trace", false, "Log every engine event to stderr.")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.Seed = *seed

	var observers []game.Observer
	if *trace {
		observers = append(observers, game.NewTraceObserver(log.New(os.Stderr, "trace ", log.Lmicroseconds)))
	}
	if !*mute {
		player := audio.NewPlayer(*volume)
		if err := player.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer player.Close()
			observers = append(observers, player)
		}
	}

	app := NewApp(cfg, observers...)

	width, height := windowSize(cfg)
	if *debug {
		app.EnableDebug(debugui_ebiten.NewImguiBackend("Blockfall", debugWidth, debugHeight))
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Blockfall")
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited with error: %v", err)
	}

	stats := app.Scheduler().Engine().Stats()
	log.Printf("Lines: %d, pieces: %d\n", stats.LinesCleared, stats.Locked)
}
