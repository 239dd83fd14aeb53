package main

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/game"
)

const (
	cellSize    = 30
	boardOffset = 50
	panelWidth  = 150
)

var (
	background = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	wallColor  = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	gridColor  = color.RGBA{R: 24, G: 24, B: 24, A: 255}
	flashColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// windowSize fits the board plus the side panel.
func windowSize(cfg game.Config) (int, int) {
	return 2*boardOffset + cfg.Width*cellSize + panelWidth, 2*boardOffset + cfg.Height*cellSize
}

func cellOrigin(x, y int) (float32, float32) {
	return float32(boardOffset + x*cellSize), float32(boardOffset + y*cellSize)
}

func drawGame(screen *ebiten.Image, e *game.Engine) {
	screen.Fill(background)

	board := e.Board()
	w, h := board.Width(), board.Height()
	vector.StrokeRect(screen, boardOffset-2, boardOffset-2, float32(w*cellSize+4), float32(h*cellSize+4), 2, wallColor, false)

	pending := e.PendingRows()
	flash := e.Mode() == game.ModeClearing && e.ClearFrame()%2 == 0

	for y := 0; y < h; y++ {
		clearing := slices.Contains(pending, y)
		for x := 0; x < w; x++ {
			switch c, ok := board.Color(x, y); {
			case clearing && flash:
				drawCell(screen, x, y, flashColor)
			case ok:
				drawCell(screen, x, y, c)
			default:
				sx, sy := cellOrigin(x, y)
				vector.StrokeRect(screen, sx, sy, cellSize, cellSize, 1, gridColor, false)
			}
		}
	}

	if !e.Done() && e.Mode() == game.ModeRunning {
		piece := e.Piece()
		for _, c := range piece.Cells() {
			if board.InBounds(c.X, c.Y) {
				drawCell(screen, c.X, c.Y, piece.Color())
			}
		}
	}

	drawPanel(screen, e, boardOffset+w*cellSize+20)
}

func drawCell(screen *ebiten.Image, x, y int, c color.Color) {
	sx, sy := cellOrigin(x, y)
	vector.DrawFilledRect(screen, sx, sy, cellSize, cellSize, c, false)
	vector.StrokeRect(screen, sx, sy, cellSize, cellSize, 1, background, false)
}

func drawPanel(screen *ebiten.Image, e *game.Engine, x int) {
	stats := e.Stats()
	ebitenutil.DebugPrintAt(screen, "LINES", x, boardOffset)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", stats.LinesCleared), x, boardOffset+20)

	ebitenutil.DebugPrintAt(screen, "PIECES", x, boardOffset+60)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", stats.Locked), x, boardOffset+80)

	ebitenutil.DebugPrintAt(screen, "CLEARS", x, boardOffset+120)
	for i, n := range stats.Clears {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d: %d", i+1, n), x, boardOffset+140+i*16)
	}

	if e.GameOver() {
		mid := boardOffset + e.Board().Height()*cellSize/2
		ebitenutil.DebugPrintAt(screen, "GAME OVER", boardOffset+20, mid-10)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", boardOffset+10, mid+20)
	}
}
