package term

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
)

const (
	blockRune   = '█'
	clearRune   = '▒'
	emptyRune   = '·'
	panelOffset = 3
)

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	clearStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer draws a game onto a tcell screen. Each board cell is two columns
// wide so blocks come out roughly square.
type Renderer struct {
	screen tcell.Screen
	x, y   int
}

// NewRenderer draws with the board's top-left wall corner at (x, y).
func NewRenderer(screen tcell.Screen, x, y int) *Renderer {
	return &Renderer{screen: screen, x: x, y: y}
}

// CellAt returns the screen position of the left column of board cell
// (bx, by).
func (r *Renderer) CellAt(bx, by int) (x, y int) {
	return r.x + 1 + 2*bx, r.y + by
}

func (r *Renderer) Draw(e *game.Engine) {
	r.screen.Clear()

	board := e.Board()
	w, h := board.Width(), board.Height()
	pending := e.PendingRows()
	flash := e.Mode() == game.ModeClearing && e.ClearFrame()%2 == 0

	for by := 0; by < h; by++ {
		_, sy := r.CellAt(0, by)
		r.screen.SetContent(r.x, sy, '│', nil, wallStyle)
		r.screen.SetContent(r.x+1+2*w, sy, '│', nil, wallStyle)

		clearing := slices.Contains(pending, by)
		for bx := 0; bx < w; bx++ {
			switch c, ok := board.Color(bx, by); {
			case clearing && flash:
				r.cell(bx, by, clearRune, clearStyle)
			case ok:
				r.cell(bx, by, blockRune, blockStyle(c))
			default:
				sx, sy := r.CellAt(bx, by)
				r.screen.SetContent(sx, sy, ' ', nil, emptyStyle)
				r.screen.SetContent(sx+1, sy, emptyRune, nil, emptyStyle)
			}
		}
	}

	bottom := r.y + h
	r.screen.SetContent(r.x, bottom, '└', nil, wallStyle)
	for sx := r.x + 1; sx <= r.x+2*w; sx++ {
		r.screen.SetContent(sx, bottom, '─', nil, wallStyle)
	}
	r.screen.SetContent(r.x+1+2*w, bottom, '┘', nil, wallStyle)

	piece := e.Piece()
	if !e.GameOver() {
		style := blockStyle(piece.Color())
		for _, c := range piece.Cells() {
			if board.InBounds(c.X, c.Y) {
				r.cell(c.X, c.Y, blockRune, style)
			}
		}
	}

	r.drawPanel(e, r.x+2+2*w+panelOffset)
	r.screen.Show()
}

func (r *Renderer) cell(bx, by int, ch rune, style tcell.Style) {
	sx, sy := r.CellAt(bx, by)
	r.screen.SetContent(sx, sy, ch, nil, style)
	r.screen.SetContent(sx+1, sy, ch, nil, style)
}

func (r *Renderer) drawPanel(e *game.Engine, x int) {
	stats := e.Stats()
	lines := []string{
		"LINES",
		fmt.Sprintf("%d", stats.LinesCleared),
		"",
		"PIECES",
		fmt.Sprintf("%d", stats.Locked),
		"",
		"MODE",
		e.Mode().String(),
	}
	for i, line := range lines {
		r.text(x, r.y+i, line, textStyle)
	}

	switch {
	case e.GameOver():
		r.text(x, r.y+len(lines)+1, "GAME OVER", alertStyle)
		r.text(x, r.y+len(lines)+2, "press any key", textStyle)
	case e.QuitRequested():
		r.text(x, r.y+len(lines)+1, "QUIT", alertStyle)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func blockStyle(c color.RGBA) tcell.Style {
	rgb := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	return tcell.StyleDefault.Foreground(rgb)
}
