package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/game/debugui"
	debugui_ebiten "github.com/plus3/blockfall/game/debugui/ebiten"
)

const (
	frameDelta  = 1.0 / 60.0
	debugWidth  = 1280
	debugHeight = 720
)

// App runs one game at a time in an ebiten window. R starts a new game with
// the same observers.
type App struct {
	cfg       game.Config
	observers []game.Observer
	scheduler *game.Scheduler
	games     uint64

	overlay      *debugui.Overlay
	imguiBackend *debugui_ebiten.ImguiBackend
}

func NewApp(cfg game.Config, observers ...game.Observer) *App {
	a := &App{cfg: cfg, observers: observers}
	a.restart()
	return a
}

// EnableDebug draws the inspector windows over the game.
func (a *App) EnableDebug(backend *debugui_ebiten.ImguiBackend) {
	a.imguiBackend = backend
	a.overlay = debugui.NewGameOverlay(a)
}

func (a *App) Scheduler() *game.Scheduler {
	return a.scheduler
}

func (a *App) restart() {
	opts := make([]game.Option, 0, len(a.observers))
	for _, o := range a.observers {
		opts = append(opts, game.WithObserver(o))
	}
	cfg := a.cfg
	// Seeded runs stay reproducible without replaying the same game.
	if cfg.Seed != 0 {
		cfg.Seed += a.games
	}
	a.games++
	a.scheduler = game.NewScheduler(game.NewEngine(cfg, opts...))
}

func (a *App) keyboardCaptured() bool {
	return a.overlay != nil && a.overlay.InputState().WantCaptureKeyboard
}

func (a *App) Update() error {
	if a.imguiBackend != nil {
		a.imguiBackend.BeginFrame()
		defer a.imguiBackend.EndFrame()
	}

	if !a.keyboardCaptured() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.restart()
		}
		for _, intent := range pressedIntents() {
			a.scheduler.Apply(intent)
		}
	}

	if a.scheduler.Engine().QuitRequested() {
		return ebiten.Termination
	}

	a.scheduler.Once(frameDelta)

	if a.overlay != nil {
		a.overlay.Render()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	drawGame(screen, a.scheduler.Engine())

	if a.imguiBackend != nil {
		a.imguiBackend.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imguiBackend != nil {
		a.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return windowSize(a.cfg)
}
