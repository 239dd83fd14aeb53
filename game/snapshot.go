package game

// Snapshot is a point-in-time copy of the engine's observable state.
type Snapshot struct {
	Mode         Mode
	PendingRows  []int
	ClearFrame   int
	GameOver     bool
	Quit         bool
	SoftDropHeld bool

	Piece          PieceType
	Orientation    int
	Origin         Point
	Locked         bool
	MovedThisCycle bool
	Cells          [4]Point

	Stats Stats
}

// Snapshot copies the current state. The result shares nothing with the
// engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Mode:           e.mode,
		PendingRows:    e.PendingRows(),
		ClearFrame:     e.clearFrame,
		GameOver:       e.gameOver,
		Quit:           e.quit,
		SoftDropHeld:   e.softDropHeld,
		Piece:          e.piece.Type(),
		Orientation:    e.piece.Orientation(),
		Origin:         e.piece.Origin(),
		Locked:         e.piece.Locked(),
		MovedThisCycle: e.piece.MovedThisCycle(),
		Cells:          e.piece.Cells(),
		Stats:          e.stats.clone(),
	}
}
