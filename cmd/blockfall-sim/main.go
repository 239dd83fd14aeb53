package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
)

// Intents the soak loop picks from. Quit is left out so games only end by
// topping out.
var playIntents = []game.Intent{
	game.IntentMoveLeft,
	game.IntentMoveRight,
	game.IntentRotateLeft,
	game.IntentRotateRight,
	game.IntentSoftDropStart,
	game.IntentSoftDropStop,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration the simulation should run for.")
	seed := flag.Uint64("seed", 0, "Seed for game and intent randomness. Zero picks one.")
	step := flag.Duration("step", 16*time.Millisecond, "Simulated time advanced per frame.")
	intentRate := flag.Float64("intent-rate", 0.3, "Probability of applying a random intent each frame.")
	trace := flag.Bool("trace", false, "Log every engine event to stderr.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(*seed, *seed))

	log.Printf("Starting blockfall simulation (seed %d)...\n", *seed)

	var opts []game.Option
	if *trace {
		opts = append(opts, game.WithObserver(game.NewTraceObserver(log.New(os.Stderr, "trace ", log.Lmicroseconds))))
	}

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Step:           *step,
		IntentRate:     *intentRate,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	dt := step.Seconds()
	scheduler := newGame(rng, opts)

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			if rng.Float64() < *intentRate {
				scheduler.Apply(playIntents[rng.IntN(len(playIntents))])
			}
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

			if scheduler.Engine().Done() {
				report.AddGame(scheduler)
				scheduler = newGame(rng, opts)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func newGame(rng *rand.Rand, opts []game.Option) *game.Scheduler {
	cfg := game.DefaultConfig()
	// A zero seed would ask the engine for a random one.
	cfg.Seed = rng.Uint64() | 1
	return game.NewScheduler(game.NewEngine(cfg, opts...))
}
