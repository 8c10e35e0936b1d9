package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"moire/moire"
)

// InputPoller turns ebiten's per-tick input state into screensaver events
type InputPoller struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID
	pointer moire.PointerTracker
}

// NewInputPoller creates a new input poller
func NewInputPoller() *InputPoller {
	return &InputPoller{
		keys:    make([]ebiten.Key, 0, 8),
		touches: make([]ebiten.TouchID, 0, 4),
	}
}

// Poll appends the events that happened since the previous tick to dst
func (p *InputPoller) Poll(dst []moire.Event) []moire.Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, moire.Event{Kind: moire.EventQuit})
	}

	// Key presses
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for range p.keys {
		dst = append(dst, moire.Event{Kind: moire.EventKeyDown})
	}

	// Every mouse button including side buttons, then touches
	sample := moire.PointerSample{}
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) {
			sample.Pressed++
		}
	}
	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	sample.Pressed += len(p.touches)

	sample.WheelX, sample.WheelY = ebiten.Wheel()
	sample.X, sample.Y = ebiten.CursorPosition()

	return p.pointer.Append(dst, sample)
}
