package moire

// EventKind tags an input event delivered by a display adapter
type EventKind int

const (
	EventOther EventKind = iota
	EventQuit
	EventMouseMotion
	EventMouseButtonDown
	EventKeyDown
)

// String returns a readable name for the kind
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventMouseMotion:
		return "mouse-motion"
	case EventMouseButtonDown:
		return "mouse-button-down"
	case EventKeyDown:
		return "key-down"
	default:
		return "other"
	}
}

// Event is one input event
type Event struct {
	Kind EventKind
}

// State is the run state of the screensaver
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// Watcher decides when input should end the screensaver.
// Quit, key presses and button presses end it at once. Mouse motion ends it
// once MotionThreshold events have accumulated across drains.
type Watcher struct {
	MotionThreshold int

	motions int
	state   State
}

// NewWatcher creates a watcher with the given motion threshold
func NewWatcher(motionThreshold int) *Watcher {
	if motionThreshold < 1 {
		motionThreshold = 1
	}
	return &Watcher{MotionThreshold: motionThreshold}
}

// Drain consumes every pending event and returns the resulting state
func (w *Watcher) Drain(events []Event) State {
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit, EventKeyDown, EventMouseButtonDown:
			w.state = StateTerminated
		case EventMouseMotion:
			w.motions++
			if w.motions >= w.MotionThreshold {
				w.state = StateTerminated
			}
		}
	}
	return w.state
}

// State returns the current run state
func (w *Watcher) State() State { return w.state }

// Motions returns how many mouse motion events have been seen
func (w *Watcher) Motions() int { return w.motions }
