package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// SchedulerStats shows frame times and per-timer execution statistics.
type SchedulerStats struct {
	source        Source
	timer         *FrameTimer
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewSchedulerStats(source Source, historyFrames int) *SchedulerStats {
	return &SchedulerStats{
		source:        source,
		timer:         NewFrameTimer(),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ss *SchedulerStats) Render() {
	deltaTime := ss.timer.GetDeltaTime()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 440), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 260), imgui.CondOnce)
	if !imgui.BeginV("Scheduler Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ss.frameHistory[ss.frameIndex] = deltaTime * 1000.0
	ss.frameIndex = (ss.frameIndex + 1) % ss.historyFrames

	stats := ss.source.Scheduler().GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Intents: %d", stats.IntentsApplied))
	imgui.Text(fmt.Sprintf("Timer fires: %d", stats.TotalFires))

	var avgFrameTime float32
	for _, ft := range ss.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ss.historyFrames)

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ss.frameHistory[0], int32(len(ss.frameHistory)))

	if imgui.TreeNodeStr("Timers") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("TimerStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Timer")
			imgui.TableSetupColumn("Interval")
			imgui.TableSetupColumn("Fires")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, timer := range stats.Timers {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(timer.ID.String())
				imgui.TableNextColumn()
				imgui.Text(timer.Interval.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", timer.FireCount))
				imgui.TableNextColumn()
				imgui.Text(timer.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(timer.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
