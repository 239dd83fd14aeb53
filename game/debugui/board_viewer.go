package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
)

// BoardViewer draws the landed grid with the active piece on top. Rows
// waiting to be cleared are dimmed.
type BoardViewer struct {
	source Source
}

func NewBoardViewer(source Source) *BoardViewer {
	return &BoardViewer{source: source}
}

var (
	emptyCell   = imgui.NewVec4(0.3, 0.3, 0.3, 1.0)
	pendingCell = imgui.NewVec4(1.0, 1.0, 1.0, 0.4)
)

func (bv *BoardViewer) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	engine := bv.source.Scheduler().Engine()
	board := engine.Board()
	piece := engine.Piece()
	pending := engine.PendingRows()

	active := make(map[game.Point]bool, 4)
	if !engine.Done() {
		for _, c := range piece.Cells() {
			active[c] = true
		}
	}

	for y := 0; y < board.Height(); y++ {
		imgui.Text(fmt.Sprintf("%2d", y))
		for x := 0; x < board.Width(); x++ {
			imgui.SameLine()

			col := emptyCell
			glyph := "."
			switch {
			case active[game.Point{X: x, Y: y}]:
				col = vec4(piece.Color())
				glyph = "#"
			case slices.Contains(pending, y):
				col = pendingCell
				glyph = "="
			default:
				if c, ok := board.Color(x, y); ok {
					col = vec4(c)
					glyph = "#"
				}
			}

			imgui.PushStyleColorVec4(imgui.ColText, col)
			imgui.Text(glyph)
			imgui.PopStyleColor()
		}
	}

	imgui.End()
}
