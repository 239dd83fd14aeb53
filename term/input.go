package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
)

// Forward reads terminal events until ctx is done and sends the resulting
// intents to out. onResize runs for every resize event. The soft-drop latch
// is checked every poll interval.
func Forward(ctx context.Context, events <-chan tcell.Event, keys *Keys, out chan<- game.Intent, poll time.Duration, onResize func()) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	send := func(intent game.Intent) bool {
		select {
		case out <- intent:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if intent, ok := keys.Key(ev, ev.When()); ok {
					if !send(intent) {
						return
					}
				}
			case *tcell.EventResize:
				if onResize != nil {
					onResize()
				}
			}
		case now := <-ticker.C:
			if intent, ok := keys.Tick(now); ok {
				if !send(intent) {
					return
				}
			}
		}
	}
}
