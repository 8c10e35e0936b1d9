package moire

// FrameTracker remembers which surface version a presenter last flushed
type FrameTracker struct {
	version   uint64
	presented bool
}

// NeedsPresent reports whether s holds a frame that has not been flushed yet.
// The first call always does, so the cleared surface reaches the display.
func (f *FrameTracker) NeedsPresent(s *Surface) bool {
	return !f.presented || s.Version() != f.version
}

// MarkPresented records that the current frame of s was flushed
func (f *FrameTracker) MarkPresented(s *Surface) {
	f.version = s.Version()
	f.presented = true
}

// PointerSample is one tick of pointer state read from a display backend
type PointerSample struct {
	X, Y           int     // Cursor position
	Pressed        int     // Buttons, side buttons and touches that went down this tick
	WheelX, WheelY float64 // Wheel offsets this tick
}

// PointerTracker turns pointer samples into events.
// The first sample only sets the cursor baseline.
type PointerTracker struct {
	x, y int
	seen bool
}

// Append adds the events described by sample to dst
func (p *PointerTracker) Append(dst []Event, sample PointerSample) []Event {
	for i := 0; i < sample.Pressed; i++ {
		dst = append(dst, Event{Kind: EventMouseButtonDown})
	}
	// A wheel notch arrives as a button press
	if sample.WheelX != 0 || sample.WheelY != 0 {
		dst = append(dst, Event{Kind: EventMouseButtonDown})
	}

	if p.seen && (sample.X != p.x || sample.Y != p.y) {
		dst = append(dst, Event{Kind: EventMouseMotion})
	}
	p.x, p.y = sample.X, sample.Y
	p.seen = true

	return dst
}
