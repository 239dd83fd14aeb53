// Package debugui provides Dear ImGui inspector windows for a running game.
// The windows only read engine state; nothing here feeds intents back.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
)

// Source hands the windows the game that is currently running. Frontends
// that restart games return the new scheduler after a restart.
type Source interface {
	Scheduler() *game.Scheduler
}

// Window is one inspector window. Render is called once per ImGui frame.
type Window interface {
	Render()
}

// InputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders a set of windows and records whether ImGui wants the input.
type Overlay struct {
	windows []Window
	input   InputState
}

func NewOverlay(windows ...Window) *Overlay {
	return &Overlay{windows: windows}
}

// NewGameOverlay returns an overlay with every inspector window attached to
// source.
func NewGameOverlay(source Source) *Overlay {
	return NewOverlay(
		NewEngineInspector(source),
		NewBoardViewer(source),
		NewSchedulerStats(source, 120),
	)
}

func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// Render updates the input state and renders every window in order. It must
// run between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	o.input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	o.input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, w := range o.windows {
		w.Render()
	}
}

func (o *Overlay) InputState() InputState {
	return o.input
}
