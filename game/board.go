package game

import (
	"fmt"
	"image/color"
	"strings"
)

// Cell is the content of one board square: Empty, or a tag naming the piece
// type whose block landed there.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

func cellFor(t PieceType) Cell {
	return Cell(t) + 1
}

// Piece returns the piece type that filled c. ok is false for Empty.
func (c Cell) Piece() (t PieceType, ok bool) {
	if c == Empty {
		return 0, false
	}
	return PieceType(c - 1), true
}

// Board is the grid of landed cells. Row 0 is the top.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty width x height board.
func NewBoard(width, height int) Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("game: invalid board size %dx%d", width, height))
	}
	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
	}
	return Board{
		width:  width,
		height: height,
		rows:   rows,
	}
}

func (b Board) Width() int {
	return b.width
}

func (b Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the content at (x, y), which must be in bounds.
func (b Board) Cell(x, y int) Cell {
	return b.rows[y][x]
}

// Color returns the colour of the landed block at (x, y). ok is false when the
// cell is empty.
func (b Board) Color(x, y int) (c color.RGBA, ok bool) {
	t, ok := b.rows[y][x].Piece()
	if !ok {
		return color.RGBA{}, false
	}
	return t.Color(), true
}

// IsOccupied reports whether (x, y) blocks a piece. Rows below the grid act as
// a solid floor and rows above it as a ceiling. x must be within [0, Width).
func (b Board) IsOccupied(x, y int) bool {
	if y < 0 || y >= b.height {
		return true
	}
	return b.rows[y][x] != Empty
}

// Lock merges the piece's cells into the grid. Every target cell must be in
// bounds and empty; anything else means a movement check was skipped, and Lock
// panics without modifying the board.
func (b *Board) Lock(piece ActivePiece) {
	cells := piece.Cells()
	for _, c := range cells {
		if !b.InBounds(c.X, c.Y) {
			panic(fmt.Sprintf("game: lock %s at (%d,%d): cell out of range", piece.Type(), c.X, c.Y))
		}
		if b.rows[c.Y][c.X] != Empty {
			panic(fmt.Sprintf("game: lock %s at (%d,%d): cell already occupied", piece.Type(), c.X, c.Y))
		}
	}

	tag := cellFor(piece.Type())
	for _, c := range cells {
		b.rows[c.Y][c.X] = tag
	}
}

// FullRows returns the indices of every row whose cells are all occupied, top
// to bottom. It returns nil when no row is full.
func (b Board) FullRows() []int {
	var full []int
	for y, row := range b.rows {
		if rowFull(row) {
			full = append(full, y)
		}
	}
	return full
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// Compact removes the given rows and lets everything above them fall, adding
// one empty row at the top for each row removed. Row indices refer to the grid
// as it is before the call; duplicates are ignored.
func (b *Board) Compact(rows []int) {
	if len(rows) == 0 {
		return
	}

	remove := make([]bool, b.height)
	for _, y := range rows {
		if y < 0 || y >= b.height {
			panic(fmt.Sprintf("game: compact row %d out of range", y))
		}
		remove[y] = true
	}

	// Fresh rows, so value copies sharing the old ones are left intact.
	compacted := make([][]Cell, 0, b.height)
	for y := range b.rows {
		if remove[y] {
			compacted = append(compacted, make([]Cell, b.width))
		}
	}
	for y, row := range b.rows {
		if !remove[y] {
			compacted = append(compacted, row)
		}
	}

	b.rows = compacted
}

// Clone returns a deep copy of b.
func (b Board) Clone() Board {
	rows := make([][]Cell, b.height)
	for y, row := range b.rows {
		rows[y] = append([]Cell(nil), row...)
	}
	return Board{
		width:  b.width,
		height: b.height,
		rows:   rows,
	}
}

// String renders the grid one line per row, '.' for empty cells and the piece
// letter otherwise.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for _, row := range b.rows {
		for _, c := range row {
			if t, ok := c.Piece(); ok {
				sb.WriteString(t.String())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
