// Package game implements the falling-block engine: the board, the piece
// table, the active piece, the bag randomizer and the tick-driven state
// machine that ties them together. Everything here runs on a single
// goroutine; frontends feed it ticks and intents and read its state back.
package game

import "math/rand/v2"

//go:generate go tool stringer -type=Mode -trimprefix=Mode
//go:generate go tool stringer -type=Intent -trimprefix=Intent

// Mode is the engine's orchestration state.
type Mode int

const (
	// ModeRunning accepts player intents and gravity.
	ModeRunning Mode = iota
	// ModeClearing holds the game while matched rows animate out.
	ModeClearing
)

// Intent is a discrete player request.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentRotateLeft
	IntentRotateRight
	IntentSoftDropStart
	IntentSoftDropStop
	IntentQuit
)

// Engine owns one game: its board, active piece and bag.
type Engine struct {
	cfg   Config
	board Board
	piece ActivePiece
	bag   Bag

	mode         Mode
	pendingRows  []int
	clearFrame   int
	softDropHeld bool
	gameOver     bool
	quit         bool

	stats     Stats
	observers []Observer
	events    eventQueue
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver registers o before the first piece spawns, so it also sees a
// game that is over immediately.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, o)
	}
}

// NewEngine starts a game with cfg and spawns the first piece.
func NewEngine(cfg Config, opts ...Option) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	e := &Engine{
		cfg:        cfg,
		board:      NewBoard(cfg.Width, cfg.Height),
		bag:        NewBag(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		mode:       ModeRunning,
		clearFrame: cfg.ClearAnimationFrames,
		stats:      newStats(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.spawnNext()
	e.flush()
	return e
}

// Observe registers o for events raised from now on.
func (e *Engine) Observe(o Observer) {
	e.observers = append(e.observers, o)
}

// GravityTick advances the natural fall by one step. A piece found resting on
// the previous tick is merged into the board here, matched rows start the
// clearing animation and the next piece spawns.
func (e *Engine) GravityTick() {
	if e.Done() || e.mode != ModeRunning {
		return
	}
	if e.piece.Locked() {
		e.lockPiece()
	} else {
		e.piece.AdvanceGravity(&e.board)
	}
	e.flush()
}

// MoveRepeatTick performs one soft-drop step while soft drop is held.
func (e *Engine) MoveRepeatTick() {
	if e.Done() || e.mode != ModeRunning || !e.softDropHeld {
		return
	}
	if e.piece.SoftDrop(&e.board) {
		e.events.push(Event{Kind: EventPieceMoved})
	}
	e.flush()
}

// ClearAnimationTick counts down the clearing animation and removes the
// matched rows once it runs out.
func (e *Engine) ClearAnimationTick() {
	if e.Done() || e.mode != ModeClearing {
		return
	}
	e.clearFrame--
	if e.clearFrame >= 0 {
		return
	}

	e.board.Compact(e.pendingRows)
	e.pendingRows = nil
	e.clearFrame = e.cfg.ClearAnimationFrames
	e.mode = ModeRunning

	// Rows above the cleared ones shift down and may land on the waiting piece.
	if e.piece.Collides(&e.board) {
		e.endGame()
	}
	e.flush()
}

// Apply handles one player intent. Intents that cannot apply right now are
// dropped without effect.
func (e *Engine) Apply(intent Intent) {
	if e.Done() {
		return
	}

	switch intent {
	case IntentQuit:
		e.quit = true
		return
	case IntentSoftDropStop:
		e.softDropHeld = false
		return
	}

	if e.mode != ModeRunning {
		return
	}

	switch intent {
	case IntentMoveLeft:
		if e.piece.AttemptTranslate(-1, 0, &e.board) {
			e.events.push(Event{Kind: EventPieceMoved})
		}
	case IntentMoveRight:
		if e.piece.AttemptTranslate(1, 0, &e.board) {
			e.events.push(Event{Kind: EventPieceMoved})
		}
	case IntentRotateLeft:
		if e.piece.AttemptRotate(CounterClockwise, &e.board) {
			e.events.push(Event{Kind: EventPieceRotated})
		}
	case IntentRotateRight:
		if e.piece.AttemptRotate(Clockwise, &e.board) {
			e.events.push(Event{Kind: EventPieceRotated})
		}
	case IntentSoftDropStart:
		e.softDropHeld = true
	}
	e.flush()
}

func (e *Engine) lockPiece() {
	e.board.Lock(e.piece)
	e.stats.recordLock()
	e.events.push(Event{Kind: EventPieceLocked})

	if rows := e.board.FullRows(); len(rows) > 0 {
		e.mode = ModeClearing
		e.pendingRows = rows
		e.clearFrame = e.cfg.ClearAnimationFrames
		e.stats.recordMatch(len(rows))
		e.events.push(Event{Kind: EventLinesMatched, Lines: len(rows)})
	}

	e.spawnNext()
}

func (e *Engine) spawnNext() {
	t := e.bag.Next()
	e.piece = Spawn(t, e.cfg.Spawn, e.cfg.SpawnOrientation)
	e.stats.recordSpawn(t)
	if e.piece.Collides(&e.board) {
		e.endGame()
	}
}

func (e *Engine) endGame() {
	e.gameOver = true
	e.events.push(Event{Kind: EventGameOver})
}

func (e *Engine) flush() {
	e.events.flush(e.observers)
}

// Done reports whether the game has ended, by topping out or by a quit.
func (e *Engine) Done() bool {
	return e.gameOver || e.quit
}

// GameOver reports whether a piece collided on arrival.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// QuitRequested reports whether the player asked to leave.
func (e *Engine) QuitRequested() bool {
	return e.quit
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Mode() Mode {
	return e.mode
}

// PendingRows returns the rows waiting to be removed while clearing.
func (e *Engine) PendingRows() []int {
	return append([]int(nil), e.pendingRows...)
}

// ClearFrame returns the clearing animation countdown.
func (e *Engine) ClearFrame() int {
	return e.clearFrame
}

func (e *Engine) SoftDropHeld() bool {
	return e.softDropHeld
}

// Cell returns the landed content at (x, y).
func (e *Engine) Cell(x, y int) Cell {
	return e.board.Cell(x, y)
}

// Board returns a copy of the landed grid.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

// Piece returns a copy of the active piece.
func (e *Engine) Piece() ActivePiece {
	return e.piece
}

// Stats returns a copy of the game's counters.
func (e *Engine) Stats() Stats {
	return e.stats.clone()
}
