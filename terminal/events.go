package terminal

import (
	"github.com/gdamore/tcell/v2"

	"moire/moire"
)

// translateEvent maps a tcell event onto the screensaver's event kinds
func translateEvent(ev tcell.Event) moire.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return moire.Event{Kind: moire.EventKeyDown}
	case *tcell.EventMouse:
		// Any button, side button or wheel notch counts as a press
		if ev.Buttons() != tcell.ButtonNone {
			return moire.Event{Kind: moire.EventMouseButtonDown}
		}
		return moire.Event{Kind: moire.EventMouseMotion}
	case *tcell.EventInterrupt:
		return moire.Event{Kind: moire.EventQuit}
	default:
		// Resize, paste and focus events are ignored
		return moire.Event{Kind: moire.EventOther}
	}
}
