package game

import "time"

const (
	DefaultWidth  = 10
	DefaultHeight = 20

	DefaultGravityInterval        = 500 * time.Millisecond
	DefaultMoveRepeatInterval     = 50 * time.Millisecond
	DefaultClearAnimationInterval = 16 * time.Millisecond
	DefaultClearAnimationFrames   = 8
)

// Config holds the fixed rules of a game.
type Config struct {
	Width  int
	Height int

	// Spawn is the board position of a new piece's origin.
	Spawn            Point
	SpawnOrientation int

	GravityInterval        time.Duration
	MoveRepeatInterval     time.Duration
	ClearAnimationInterval time.Duration
	// ClearAnimationFrames is the countdown that runs before matched rows are
	// removed. The rows go on the tick that takes it below zero.
	ClearAnimationFrames int

	// Seed feeds the bag's shuffles. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the shipped rules.
func DefaultConfig() Config {
	return Config{
		Width:                  DefaultWidth,
		Height:                 DefaultHeight,
		Spawn:                  Point{X: 4, Y: 0},
		SpawnOrientation:       1,
		GravityInterval:        DefaultGravityInterval,
		MoveRepeatInterval:     DefaultMoveRepeatInterval,
		ClearAnimationInterval: DefaultClearAnimationInterval,
		ClearAnimationFrames:   DefaultClearAnimationFrames,
	}
}
