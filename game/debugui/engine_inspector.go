package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
)

type EngineInspector struct {
	source Source
}

func NewEngineInspector(source Source) *EngineInspector {
	return &EngineInspector{source: source}
}

func (ei *EngineInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 420), imgui.CondOnce)
	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	engine := ei.source.Scheduler().Engine()
	snap := engine.Snapshot()
	cfg := engine.Config()

	switch {
	case snap.GameOver:
		imgui.TextColored(imgui.NewVec4(1.0, 0.2, 0.2, 1.0), "GAME OVER")
	case snap.Quit:
		imgui.TextColored(imgui.NewVec4(0.6, 0.6, 0.6, 1.0), "QUIT")
	case snap.Mode == game.ModeClearing:
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "CLEARING")
		progress := 1 - float32(snap.ClearFrame+1)/float32(cfg.ClearAnimationFrames+1)
		imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("frame %d, rows %v", snap.ClearFrame, snap.PendingRows))
	default:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.Separator()

	imgui.PushStyleColorVec4(imgui.ColText, vec4(snap.Piece.Color()))
	imgui.Text(fmt.Sprintf("Piece %s", snap.Piece))
	imgui.PopStyleColor()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PieceTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Field")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		row := func(name, value string) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(name)
			imgui.TableNextColumn()
			imgui.Text(value)
		}
		row("Origin", fmt.Sprintf("(%d, %d)", snap.Origin.X, snap.Origin.Y))
		row("Orientation", fmt.Sprintf("%d", snap.Orientation))
		row("Cells", fmt.Sprintf("%v", snap.Cells))
		row("Locked", fmt.Sprintf("%t", snap.Locked))
		row("Moved this cycle", fmt.Sprintf("%t", snap.MovedThisCycle))
		row("Soft drop held", fmt.Sprintf("%t", snap.SoftDropHeld))

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Statistics") {
		stats := snap.Stats
		imgui.Text(fmt.Sprintf("Spawned: %d", stats.Spawned))
		imgui.Text(fmt.Sprintf("Locked: %d", stats.Locked))
		imgui.Text(fmt.Sprintf("Lines: %d", stats.LinesCleared))
		imgui.Text(fmt.Sprintf("Singles %d | Doubles %d | Triples %d | Tetrises %d",
			stats.Clears[0], stats.Clears[1], stats.Clears[2], stats.Clears[3]))

		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Type")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			for pt := game.PieceType(0); pt < game.PieceCount; pt++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.TextColored(vec4(pt.Color()), pt.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.SpawnedOf(pt)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func vec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}
