// Package audio plays short synthesized cues for engine events.
package audio

//go:generate go tool stringer -type=Cue -trimprefix=Cue

// Cue is one sound the game can make.
type Cue int

const (
	CueMove Cue = iota
	CueRotate
	CueLock
	CueSingle
	CueMulti
	CueTetris
	CueGameOver
)

// CueForLines picks the line-clear cue for a number of rows matched at once:
// one row is a single, two or three a multi, four or more a tetris. It
// reports false when no rows matched.
func CueForLines(count int) (Cue, bool) {
	switch {
	case count <= 0:
		return 0, false
	case count == 1:
		return CueSingle, true
	case count < 4:
		return CueMulti, true
	default:
		return CueTetris, true
	}
}
