package game_test

import (
	"fmt"

	"github.com/plus3/blockfall/game"
)

// ExampleEngine drives one piece to the floor with gravity ticks alone. The
// piece locks on the tick after it comes to rest, and the next piece spawns in
// the same step.
func ExampleEngine() {
	cfg := game.DefaultConfig()
	cfg.Seed = 42

	engine := game.NewEngine(cfg, game.WithObserver(game.ObserverFuncs{
		OnPieceLocked: func() { fmt.Println("locked") },
	}))

	for engine.Stats().Locked == 0 {
		engine.GravityTick()
	}

	stats := engine.Stats()
	fmt.Println("spawned:", stats.Spawned)
	fmt.Println("mode:", engine.Mode())
	// Output:
	// locked
	// spawned: 2
	// mode: Running
}

// ExampleScheduler feeds wall-clock time to the engine's timers. Soft drop is
// applied through the scheduler so it lands on the same timeline as the ticks.
func ExampleScheduler() {
	cfg := game.DefaultConfig()
	cfg.Seed = 7
	engine := game.NewEngine(cfg)
	scheduler := game.NewScheduler(engine)

	scheduler.Apply(game.IntentSoftDropStart)
	scheduler.Once(0.25)

	fmt.Println("row:", engine.Piece().Origin().Y)
	for _, timer := range scheduler.GetStats().Timers {
		fmt.Printf("%s fired %d\n", timer.ID, timer.FireCount)
	}
	// Output:
	// row: 5
	// MoveRepeat fired 5
	// Gravity fired 0
	// ClearAnimation fired 15
}

// ExampleBoard_Compact removes two full rows and lets the rest fall.
func ExampleBoard_Compact() {
	board := game.NewBoard(4, 4)
	board.Lock(game.Spawn(game.PieceI, game.Point{X: -1, Y: -1}, 0))
	board.Lock(game.Spawn(game.PieceI, game.Point{X: -1, Y: 0}, 0))
	board.Lock(game.Spawn(game.PieceO, game.Point{X: 1, Y: 0}, 0))

	fmt.Print(board.String())
	board.Compact(board.FullRows())
	fmt.Println("--")
	fmt.Print(board.String())
	// Output:
	// .OO.
	// .OO.
	// IIII
	// IIII
	// --
	// ....
	// ....
	// .OO.
	// .OO.
}
