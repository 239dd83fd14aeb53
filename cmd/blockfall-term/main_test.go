package main

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 24)

	cfg := game.DefaultConfig()
	cfg.Seed = 3

	go func() {
		time.Sleep(20 * time.Millisecond)
		screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
		screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	}()

	done := make(chan game.Stats)
	go func() {
		done <- run(screen, cfg, nil, time.Millisecond, 50*time.Millisecond, log.New(io.Discard, "", 0))
	}()

	select {
	case stats := <-done:
		assert.Equal(t, 1, stats.Spawned)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after escape")
	}
}
