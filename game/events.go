package game

//go:generate go tool stringer -type=EventKind -trimprefix=Event

// Observer receives the engine's outbound events. Calls happen on the
// engine's goroutine after the tick or intent that raised them has finished.
type Observer interface {
	PieceMoved()
	PieceRotated()
	PieceLocked()
	LinesMatched(count int)
	GameOver()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnPieceMoved   func()
	OnPieceRotated func()
	OnPieceLocked  func()
	OnLinesMatched func(count int)
	OnGameOver     func()
}

func (o ObserverFuncs) PieceMoved() {
	if o.OnPieceMoved != nil {
		o.OnPieceMoved()
	}
}

func (o ObserverFuncs) PieceRotated() {
	if o.OnPieceRotated != nil {
		o.OnPieceRotated()
	}
}

func (o ObserverFuncs) PieceLocked() {
	if o.OnPieceLocked != nil {
		o.OnPieceLocked()
	}
}

func (o ObserverFuncs) LinesMatched(count int) {
	if o.OnLinesMatched != nil {
		o.OnLinesMatched(count)
	}
}

func (o ObserverFuncs) GameOver() {
	if o.OnGameOver != nil {
		o.OnGameOver()
	}
}

// EventKind names an outbound event.
type EventKind int

const (
	EventPieceMoved EventKind = iota
	EventPieceRotated
	EventPieceLocked
	EventLinesMatched
	EventGameOver
)

// Event is one buffered outbound event. Lines is set for EventLinesMatched.
type Event struct {
	Kind  EventKind
	Lines int
}

func (e Event) deliver(o Observer) {
	switch e.Kind {
	case EventPieceMoved:
		o.PieceMoved()
	case EventPieceRotated:
		o.PieceRotated()
	case EventPieceLocked:
		o.PieceLocked()
	case EventLinesMatched:
		o.LinesMatched(e.Lines)
	case EventGameOver:
		o.GameOver()
	}
}

// eventQueue buffers events raised while a step runs so observers only ever
// see the state after the step.
type eventQueue struct {
	pending []Event
}

func (q *eventQueue) push(e Event) {
	q.pending = append(q.pending, e)
}

// flush delivers every buffered event to each observer in registration order
// and resets the buffer.
func (q *eventQueue) flush(observers []Observer) {
	for _, e := range q.pending {
		for _, o := range observers {
			e.deliver(o)
		}
	}
	q.pending = q.pending[:0]
}
