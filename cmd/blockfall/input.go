package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/game"
)

type binding struct {
	keys   []ebiten.Key
	intent game.Intent
}

// Bindings fire on the frame a key goes down. Soft drop also stops on the
// frame its key comes up.
var (
	pressBindings = []binding{
		{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, intent: game.IntentMoveLeft},
		{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, intent: game.IntentMoveRight},
		{keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyZ}, intent: game.IntentRotateLeft},
		{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyE, ebiten.KeyX}, intent: game.IntentRotateRight},
		{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, intent: game.IntentSoftDropStart},
		{keys: []ebiten.Key{ebiten.KeyEscape}, intent: game.IntentQuit},
	}
	releaseBindings = []binding{
		{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, intent: game.IntentSoftDropStop},
	}
)

// pressedIntents returns the intents for this frame's key transitions in
// binding order.
func pressedIntents() []game.Intent {
	return collectIntents(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased)
}

func collectIntents(pressed, released func(ebiten.Key) bool) []game.Intent {
	var intents []game.Intent
	for _, b := range releaseBindings {
		if anyKey(b.keys, released) {
			intents = append(intents, b.intent)
		}
	}
	for _, b := range pressBindings {
		if anyKey(b.keys, pressed) {
			intents = append(intents, b.intent)
		}
	}
	return intents
}

func anyKey(keys []ebiten.Key, test func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if test(k) {
			return true
		}
	}
	return false
}
