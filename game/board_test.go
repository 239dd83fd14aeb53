package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromRows builds a board from rows drawn the way Board.String prints
// them: '.' for empty, a piece letter otherwise.
func boardFromRows(t *testing.T, rows ...string) Board {
	t.Helper()
	require.NotEmpty(t, rows)

	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, b.Width(), "row %d", y)
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			pt := pieceByLetter(t, ch)
			b.rows[y][x] = cellFor(pt)
		}
	}
	return b
}

func pieceByLetter(t *testing.T, ch rune) PieceType {
	t.Helper()
	for pt := PieceType(0); pt < PieceCount; pt++ {
		if pt.String() == string(ch) {
			return pt
		}
	}
	require.Failf(t, "unknown piece letter", "%q", ch)
	return 0
}

func rowsOf(b Board) string {
	return strings.TrimSuffix(b.String(), "\n")
}

func TestBoard(t *testing.T) {
	t.Run("new board is empty", func(t *testing.T) {
		b := NewBoard(3, 2)
		assert.Equal(t, 3, b.Width())
		assert.Equal(t, 2, b.Height())
		assert.Equal(t, "...\n...", rowsOf(b))
		assert.Nil(t, b.FullRows())
	})

	t.Run("invalid size panics", func(t *testing.T) {
		assert.Panics(t, func() { NewBoard(0, 4) })
		assert.Panics(t, func() { NewBoard(4, -1) })
	})

	t.Run("rows outside the grid are occupied", func(t *testing.T) {
		b := NewBoard(2, 2)
		assert.True(t, b.IsOccupied(0, -1))
		assert.True(t, b.IsOccupied(1, 2))
		assert.False(t, b.IsOccupied(1, 1))
	})

	t.Run("cell colour follows the landed piece", func(t *testing.T) {
		b := boardFromRows(t, "Z.")
		c, ok := b.Color(0, 0)
		assert.True(t, ok)
		assert.Equal(t, PieceZ.Color(), c)

		_, ok = b.Color(1, 0)
		assert.False(t, ok)
	})
}

func TestBoardLock(t *testing.T) {
	t.Run("writes exactly the piece cells", func(t *testing.T) {
		b := NewBoard(4, 4)
		before := b.Clone()
		piece := Spawn(PieceT, Point{X: 0, Y: 0}, 0)

		b.Lock(piece)

		cells := piece.Cells()
		changed := 0
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				if b.Cell(x, y) != before.Cell(x, y) {
					changed++
				}
			}
		}
		assert.Equal(t, len(cells), changed)
		for _, c := range cells {
			assert.True(t, b.IsOccupied(c.X, c.Y), "%v", c)
			pt, ok := b.Cell(c.X, c.Y).Piece()
			assert.True(t, ok)
			assert.Equal(t, PieceT, pt)
		}
		assert.Equal(t, ".T..\nTTT.\n....\n....", rowsOf(b))
	})

	t.Run("occupied target panics without writing", func(t *testing.T) {
		b := boardFromRows(t,
			"....",
			".I..",
			"....",
		)
		before := b.String()

		assert.Panics(t, func() { b.Lock(Spawn(PieceT, Point{X: 0, Y: 0}, 0)) })
		assert.Equal(t, before, b.String())
	})

	t.Run("out of range target panics", func(t *testing.T) {
		b := NewBoard(2, 2)
		assert.Panics(t, func() { b.Lock(Spawn(PieceO, Point{X: 1, Y: 0}, 0)) })
		assert.Equal(t, "..\n..", rowsOf(b))
	})
}

func TestBoardFullRows(t *testing.T) {
	b := boardFromRows(t,
		"...",
		"IJL",
		"I.L",
		"SSZ",
	)
	assert.Equal(t, []int{1, 3}, b.FullRows())
}

func TestBoardCompact(t *testing.T) {
	t.Run("removes rows and shifts the rest down", func(t *testing.T) {
		b := boardFromRows(t,
			"I.",
			"II",
			"I.",
			"II",
		)
		b.Compact(b.FullRows())

		assert.Equal(t, "..\n..\nI.\nI.", rowsOf(b))
		assert.Equal(t, 4, b.Height())
		assert.Nil(t, b.FullRows())
	})

	t.Run("keeps non-full rows in order", func(t *testing.T) {
		b := boardFromRows(t,
			"J..",
			"LLL",
			".S.",
			"..Z",
		)
		b.Compact([]int{1})
		assert.Equal(t, "...\nJ..\n.S.\n..Z", rowsOf(b))
	})

	t.Run("duplicate rows count once", func(t *testing.T) {
		b := boardFromRows(t,
			"T.",
			"OO",
		)
		b.Compact([]int{1, 1})
		assert.Equal(t, "..\nT.", rowsOf(b))
	})

	t.Run("nothing to remove", func(t *testing.T) {
		b := boardFromRows(t, "T.", ".T")
		b.Compact(nil)
		assert.Equal(t, "T.\n.T", rowsOf(b))
	})

	t.Run("value copies keep their rows", func(t *testing.T) {
		b := boardFromRows(t,
			"..",
			"OO",
		)
		cp := b
		cp.Compact([]int{1})

		assert.Equal(t, "..\n..", rowsOf(cp))
		assert.Equal(t, "..\nOO", rowsOf(b))
		assert.Equal(t, []int{1}, b.FullRows())
	})

	t.Run("out of range row panics", func(t *testing.T) {
		b := NewBoard(2, 2)
		assert.Panics(t, func() { b.Compact([]int{2}) })
	})
}

func TestBoardClone(t *testing.T) {
	b := boardFromRows(t, "O.", "..")
	c := b.Clone()
	c.rows[1][1] = cellFor(PieceI)

	assert.Equal(t, "O.\n..", rowsOf(b))
	assert.Equal(t, "O.\n.I", rowsOf(c))
}
