package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	mainc, _, _, _ := screen.GetContent(x, y)
	return mainc
}

func rowText(screen tcell.Screen, y, from, to int) string {
	var sb strings.Builder
	for x := from; x < to; x++ {
		sb.WriteRune(runeAt(screen, x, y))
	}
	return strings.TrimRight(sb.String(), " ")
}

func newEngine() *game.Engine {
	cfg := game.DefaultConfig()
	cfg.Seed = 1
	return game.NewEngine(cfg)
}

func TestRendererDraw(t *testing.T) {
	screen := newScreen(t)
	engine := newEngine()
	r := NewRenderer(screen, 0, 0)

	r.Draw(engine)

	assert.Equal(t, '│', runeAt(screen, 0, 0))
	assert.Equal(t, '│', runeAt(screen, 21, 0))
	assert.Equal(t, '└', runeAt(screen, 0, 20))
	assert.Equal(t, '─', runeAt(screen, 1, 20))
	assert.Equal(t, '┘', runeAt(screen, 21, 20))

	for _, c := range engine.Piece().Cells() {
		x, y := r.CellAt(c.X, c.Y)
		assert.Equal(t, blockRune, runeAt(screen, x, y), "%v", c)
		assert.Equal(t, blockRune, runeAt(screen, x+1, y), "%v", c)
	}

	x, y := r.CellAt(0, 19)
	assert.Equal(t, emptyRune, runeAt(screen, x+1, y))

	panelX := 2 + 2*game.DefaultWidth + panelOffset
	assert.Equal(t, "LINES", rowText(screen, 0, panelX, 60))
	assert.Equal(t, "0", rowText(screen, 1, panelX, 60))
	assert.Equal(t, "Running", rowText(screen, 7, panelX, 60))
}

func TestRendererLandedBlocks(t *testing.T) {
	screen := newScreen(t)
	engine := newEngine()
	r := NewRenderer(screen, 2, 1)

	for !engine.Done() && engine.Stats().Locked == 0 {
		engine.GravityTick()
	}
	r.Draw(engine)

	board := engine.Board()
	blocks := 0
	for by := 0; by < board.Height(); by++ {
		for bx := 0; bx < board.Width(); bx++ {
			if board.Cell(bx, by) == game.Empty {
				continue
			}
			blocks++
			x, y := r.CellAt(bx, by)
			assert.Equal(t, blockRune, runeAt(screen, x, y))
		}
	}
	assert.Equal(t, 4, blocks)
	assert.Equal(t, "PIECES", rowText(screen, 1+3, 2+2+2*game.DefaultWidth+panelOffset, 60))
}

func TestRendererGameOver(t *testing.T) {
	screen := newScreen(t)
	engine := newEngine()
	r := NewRenderer(screen, 0, 0)

	for i := 0; i < 10_000 && !engine.Done(); i++ {
		engine.GravityTick()
	}
	require.True(t, engine.GameOver())

	r.Draw(engine)
	panelX := 2 + 2*game.DefaultWidth + panelOffset
	assert.Equal(t, "GAME OVER", rowText(screen, 9, panelX, 60))
}
