// Package term renders a game on a tcell screen and turns terminal key
// events into intents.
package term

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
)

// DefaultSoftDropHold is how long one soft-drop key event keeps the drop held.
// Terminals report no key release, so a held key is seen as a stream of
// auto-repeated presses and the drop releases once they stop.
const DefaultSoftDropHold = 180 * time.Millisecond

// IntentFor maps one key event to an intent. ok is false for unbound keys.
// The soft-drop keys map to IntentSoftDropStart.
func IntentFor(ev *tcell.EventKey) (intent game.Intent, ok bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.IntentMoveLeft, true
	case tcell.KeyRight:
		return game.IntentMoveRight, true
	case tcell.KeyUp:
		return game.IntentRotateRight, true
	case tcell.KeyDown:
		return game.IntentSoftDropStart, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.IntentQuit, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'a':
			return game.IntentMoveLeft, true
		case 'd':
			return game.IntentMoveRight, true
		case 'q':
			return game.IntentRotateLeft, true
		case 'e':
			return game.IntentRotateRight, true
		case 's':
			return game.IntentSoftDropStart, true
		}
	}
	return 0, false
}

// SoftDropLatch emulates a held soft-drop key on top of repeated presses.
type SoftDropLatch struct {
	hold  time.Duration
	until time.Time
	held  bool
}

func NewSoftDropLatch(hold time.Duration) *SoftDropLatch {
	return &SoftDropLatch{hold: hold}
}

// Press records a soft-drop key event at now. It reports true when the drop
// was not already held, meaning a SoftDropStart should be sent.
func (l *SoftDropLatch) Press(now time.Time) bool {
	l.until = now.Add(l.hold)
	if l.held {
		return false
	}
	l.held = true
	return true
}

// Expire reports true once the hold window has passed without another press,
// meaning a SoftDropStop should be sent.
func (l *SoftDropLatch) Expire(now time.Time) bool {
	if !l.held || now.Before(l.until) {
		return false
	}
	l.held = false
	return true
}

func (l *SoftDropLatch) Held() bool {
	return l.held
}

// Keys turns key events into intents, latching the soft drop.
type Keys struct {
	latch *SoftDropLatch
}

func NewKeys(hold time.Duration) *Keys {
	return &Keys{latch: NewSoftDropLatch(hold)}
}

// Key translates ev received at now. Repeats of a held soft drop produce
// nothing.
func (k *Keys) Key(ev *tcell.EventKey, now time.Time) (game.Intent, bool) {
	intent, ok := IntentFor(ev)
	if !ok {
		return 0, false
	}
	if intent == game.IntentSoftDropStart && !k.latch.Press(now) {
		return 0, false
	}
	return intent, true
}

// Tick reports the SoftDropStop intent when the latched drop has expired.
func (k *Keys) Tick(now time.Time) (game.Intent, bool) {
	if k.latch.Expire(now) {
		return game.IntentSoftDropStop, true
	}
	return 0, false
}
