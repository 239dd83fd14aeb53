package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceDefinitions(t *testing.T) {
	t.Run("offsets within an orientation are distinct", func(t *testing.T) {
		for pt := PieceType(0); pt < PieceCount; pt++ {
			for o := 0; o < 4; o++ {
				seen := make(map[Point]bool, 4)
				for _, off := range pt.Orientation(o) {
					assert.False(t, seen[off], "%s orientation %d repeats %v", pt, o, off)
					seen[off] = true
				}
			}
		}
	})

	t.Run("orientation index wraps", func(t *testing.T) {
		for pt := PieceType(0); pt < PieceCount; pt++ {
			assert.Equal(t, pt.Orientation(0), pt.Orientation(4), pt.String())
			assert.Equal(t, pt.Orientation(3), pt.Orientation(-1), pt.String())
			assert.Equal(t, pt.Orientation(1), pt.Orientation(-7), pt.String())
		}
	})

	t.Run("only O is fixed", func(t *testing.T) {
		for pt := PieceType(0); pt < PieceCount; pt++ {
			assert.Equal(t, pt == PieceO, pt.Definition().Fixed, pt.String())
		}
	})

	t.Run("colours are opaque and distinct", func(t *testing.T) {
		seen := make(map[[4]uint8]PieceType)
		for pt := PieceType(0); pt < PieceCount; pt++ {
			c := pt.Color()
			assert.Equal(t, uint8(255), c.A, pt.String())
			key := [4]uint8{c.R, c.G, c.B, c.A}
			other, dup := seen[key]
			assert.False(t, dup, "%s shares a colour with %s", pt, other)
			seen[key] = pt
		}
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, PieceO.Valid())
		assert.True(t, PieceT.Valid())
		assert.False(t, PieceType(-1).Valid())
		assert.False(t, PieceType(PieceCount).Valid())
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "I", PieceI.String())
		assert.Equal(t, "T", PieceT.String())
		assert.Equal(t, "PieceType(9)", PieceType(9).String())
	})
}
