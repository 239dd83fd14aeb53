package game

import "image/color"

// Direction is a rotation sense.
type Direction int

const (
	CounterClockwise Direction = -1
	Clockwise        Direction = 1
)

// ActivePiece is the piece currently under player control.
type ActivePiece struct {
	kind        PieceType
	orientation int
	origin      Point
	locked      bool
	// Set by a successful soft drop and consumed by the next gravity step so
	// one gravity window never advances the piece twice.
	movedThisCycle bool
}

// Spawn places a fresh piece of type t with its origin at at.
func Spawn(t PieceType, at Point, orientation int) ActivePiece {
	return ActivePiece{
		kind:        t,
		orientation: wrapOrientation(orientation),
		origin:      at,
	}
}

func (p ActivePiece) Type() PieceType {
	return p.kind
}

func (p ActivePiece) Orientation() int {
	return p.orientation
}

func (p ActivePiece) Origin() Point {
	return p.origin
}

// Locked reports whether the piece has come to rest.
func (p ActivePiece) Locked() bool {
	return p.locked
}

func (p ActivePiece) MovedThisCycle() bool {
	return p.movedThisCycle
}

func (p ActivePiece) Color() color.RGBA {
	return p.kind.Color()
}

// Cells returns the board coordinates the piece covers.
func (p ActivePiece) Cells() [4]Point {
	var cells [4]Point
	for i, off := range p.shape() {
		cells[i] = p.origin.Add(off)
	}
	return cells
}

func (p ActivePiece) shape() Orientation {
	return definitions[p.kind].Orientations[p.orientation]
}

// Collides reports whether the piece overlaps the board or lies outside it at
// its current position.
func (p ActivePiece) Collides(board *Board) bool {
	return WouldCollide(p.shape(), p.origin, board)
}

// WouldCollide reports whether shape placed at origin has a cell outside the
// columns of board, below its floor, or on a landed block.
func WouldCollide(shape Orientation, origin Point, board *Board) bool {
	for _, off := range shape {
		c := origin.Add(off)
		if c.X < 0 || c.X >= board.Width() || c.Y > board.Height()-1 {
			return true
		}
		if board.IsOccupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// AttemptTranslate moves the piece by (dx, dy) if every resulting cell is
// free. It reports whether the move happened; a rejected move changes nothing.
func (p *ActivePiece) AttemptTranslate(dx, dy int, board *Board) bool {
	if p.locked {
		return false
	}
	candidate := Point{X: p.origin.X + dx, Y: p.origin.Y + dy}
	if WouldCollide(p.shape(), candidate, board) {
		return false
	}
	p.origin = candidate
	return true
}

// AttemptRotate turns the piece one step in place. There is no kick search: if
// the rotated shape collides at the current origin, the rotation is rejected
// and nothing changes. Fixed shapes always succeed without changing state.
func (p *ActivePiece) AttemptRotate(dir Direction, board *Board) bool {
	if p.locked {
		return false
	}
	def := &definitions[p.kind]
	if def.Fixed {
		return true
	}
	next := wrapOrientation(p.orientation + int(dir))
	if WouldCollide(def.Orientations[next], p.origin, board) {
		return false
	}
	p.orientation = next
	return true
}

// AdvanceGravity performs one gravity step and reports whether the piece moved
// down. A step right after a soft drop is absorbed. Otherwise the piece looks
// one row ahead: if any cell sits on the floor or above a landed block it
// locks in place, else it falls one row.
func (p *ActivePiece) AdvanceGravity(board *Board) bool {
	if p.locked {
		return false
	}
	if p.movedThisCycle {
		p.movedThisCycle = false
		return false
	}
	for _, c := range p.Cells() {
		if c.Y == board.Height()-1 || board.IsOccupied(c.X, c.Y+1) {
			p.locked = true
			return false
		}
	}
	p.origin.Y++
	return true
}

// SoftDrop moves the piece down one row if it can, and marks the move so the
// next gravity step is absorbed.
func (p *ActivePiece) SoftDrop(board *Board) bool {
	if !p.AttemptTranslate(0, 1, board) {
		return false
	}
	p.movedThisCycle = true
	return true
}
