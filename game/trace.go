package game

import "log"

// TraceObserver writes one log line per engine event.
type TraceObserver struct {
	logger *log.Logger
}

// NewTraceObserver returns an observer that logs through logger.
func NewTraceObserver(logger *log.Logger) *TraceObserver {
	return &TraceObserver{logger: logger}
}

func (t *TraceObserver) PieceMoved() {
	t.logger.Printf("event=%s", EventPieceMoved)
}

func (t *TraceObserver) PieceRotated() {
	t.logger.Printf("event=%s", EventPieceRotated)
}

func (t *TraceObserver) PieceLocked() {
	t.logger.Printf("event=%s", EventPieceLocked)
}

func (t *TraceObserver) LinesMatched(count int) {
	t.logger.Printf("event=%s lines=%d", EventLinesMatched, count)
}

func (t *TraceObserver) GameOver() {
	t.logger.Printf("event=%s", EventGameOver)
}
