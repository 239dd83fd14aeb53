package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivePieceTranslate(t *testing.T) {
	t.Run("moves into free cells", func(t *testing.T) {
		b := NewBoard(4, 4)
		p := Spawn(PieceO, Point{X: 0, Y: 0}, 0)

		assert.True(t, p.AttemptTranslate(1, 0, &b))
		assert.Equal(t, Point{X: 1, Y: 0}, p.Origin())
		assert.Equal(t, [4]Point{{1, 0}, {2, 0}, {1, 1}, {2, 1}}, p.Cells())
	})

	t.Run("rejected moves change nothing", func(t *testing.T) {
		b := boardFromRows(t,
			"....",
			"....",
			"..I.",
			"....",
		)
		p := Spawn(PieceO, Point{X: 0, Y: 1}, 0)
		before := p

		assert.False(t, p.AttemptTranslate(-1, 0, &b), "left wall")
		assert.Equal(t, before, p)
		assert.False(t, p.AttemptTranslate(1, 0, &b), "landed block")
		assert.Equal(t, before, p)
		assert.False(t, p.AttemptTranslate(0, 2, &b), "floor")
		assert.Equal(t, before, p)
	})

	t.Run("locked piece does not move", func(t *testing.T) {
		b := NewBoard(4, 2)
		p := Spawn(PieceO, Point{X: 0, Y: 0}, 0)
		p.AdvanceGravity(&b)
		assert.True(t, p.Locked())

		assert.False(t, p.AttemptTranslate(1, 0, &b))
		assert.False(t, p.AttemptRotate(Clockwise, &b))
		assert.Equal(t, Point{X: 0, Y: 0}, p.Origin())
	})
}

func TestActivePieceRotate(t *testing.T) {
	t.Run("cycles through orientations", func(t *testing.T) {
		b := NewBoard(10, 10)
		p := Spawn(PieceT, Point{X: 3, Y: 3}, 0)

		for want := 1; want <= 4; want++ {
			assert.True(t, p.AttemptRotate(Clockwise, &b))
			assert.Equal(t, want%4, p.Orientation())
		}
		assert.True(t, p.AttemptRotate(CounterClockwise, &b))
		assert.Equal(t, 3, p.Orientation())
	})

	t.Run("wall blocks rotation", func(t *testing.T) {
		b := NewBoard(10, 20)
		// Vertical I hugging the left wall: both neighbours poke past column 0.
		p := Spawn(PieceI, Point{X: -2, Y: 0}, 1)
		assert.False(t, p.Collides(&b))
		before := p

		assert.False(t, p.AttemptRotate(Clockwise, &b))
		assert.Equal(t, before, p)
		assert.False(t, p.AttemptRotate(CounterClockwise, &b))
		assert.Equal(t, before, p)
	})

	t.Run("landed cell blocks rotation", func(t *testing.T) {
		b := boardFromRows(t,
			"....",
			"....",
			"..Z.",
			"....",
		)
		p := Spawn(PieceL, Point{X: 0, Y: 0}, 0)
		before := p

		assert.False(t, p.AttemptRotate(Clockwise, &b))
		assert.Equal(t, before, p)

		assert.True(t, p.AttemptRotate(CounterClockwise, &b))
		assert.Equal(t, 3, p.Orientation())
		assert.Equal(t, Point{X: 0, Y: 0}, p.Origin())
	})

	t.Run("O rotates in place", func(t *testing.T) {
		b := NewBoard(2, 2)
		p := Spawn(PieceO, Point{X: 0, Y: 0}, 0)
		before := p

		assert.True(t, p.AttemptRotate(Clockwise, &b))
		assert.Equal(t, before, p)
	})
}

func TestActivePieceGravity(t *testing.T) {
	t.Run("falls one row", func(t *testing.T) {
		b := NewBoard(4, 4)
		p := Spawn(PieceO, Point{X: 0, Y: 1}, 0)

		assert.True(t, p.AdvanceGravity(&b))
		assert.Equal(t, Point{X: 0, Y: 2}, p.Origin())
		assert.False(t, p.Locked())
	})

	t.Run("locks one row above the floor", func(t *testing.T) {
		b := NewBoard(4, 4)
		p := Spawn(PieceO, Point{X: 0, Y: 2}, 0)

		assert.False(t, p.AdvanceGravity(&b))
		assert.True(t, p.Locked())
		assert.Equal(t, Point{X: 0, Y: 2}, p.Origin())
		assert.False(t, p.Collides(&b))
	})

	t.Run("locks on a landed block", func(t *testing.T) {
		b := boardFromRows(t,
			"....",
			"....",
			"....",
			".L..",
		)
		p := Spawn(PieceO, Point{X: 0, Y: 1}, 0)

		assert.False(t, p.AdvanceGravity(&b))
		assert.True(t, p.Locked())
		assert.Equal(t, Point{X: 0, Y: 1}, p.Origin())
	})

	t.Run("soft drop absorbs the next step", func(t *testing.T) {
		b := NewBoard(4, 6)
		p := Spawn(PieceO, Point{X: 0, Y: 0}, 0)

		assert.True(t, p.SoftDrop(&b))
		assert.Equal(t, 1, p.Origin().Y)
		assert.True(t, p.MovedThisCycle())

		assert.False(t, p.AdvanceGravity(&b))
		assert.Equal(t, 1, p.Origin().Y)
		assert.False(t, p.MovedThisCycle())

		assert.True(t, p.AdvanceGravity(&b))
		assert.Equal(t, 2, p.Origin().Y)
	})

	t.Run("blocked soft drop leaves the flag clear", func(t *testing.T) {
		b := NewBoard(2, 2)
		p := Spawn(PieceO, Point{X: 0, Y: 0}, 0)

		assert.False(t, p.SoftDrop(&b))
		assert.False(t, p.MovedThisCycle())
		assert.False(t, p.Locked())
	})
}

func TestWouldCollide(t *testing.T) {
	b := boardFromRows(t,
		"...",
		"...",
		"..S",
	)
	shape := PieceO.Orientation(0)

	assert.False(t, WouldCollide(shape, Point{X: 0, Y: 1}, &b))
	assert.True(t, WouldCollide(shape, Point{X: 1, Y: 1}, &b))
	assert.True(t, WouldCollide(shape, Point{X: 2, Y: 0}, &b))
	assert.True(t, WouldCollide(shape, Point{X: 0, Y: 2}, &b))
	assert.True(t, WouldCollide(shape, Point{X: 0, Y: -1}, &b))
}
