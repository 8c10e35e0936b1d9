package moire

import "time"

// Config holds the fixed animation constants
type Config struct {
	// VertexCount is the number of bouncing polygon vertices
	VertexCount int

	// TrailLength is how many frames of edges stay visible
	TrailLength int

	// Speed is the per-axis velocity magnitude in pixels per frame
	Speed int

	// PhaseStep is how far the color phase advances each frame
	PhaseStep float64

	// FrameDelay is the pause between frames
	FrameDelay time.Duration

	// MotionThreshold is the number of mouse motion events that end the run
	MotionThreshold int

	// Palette is the circular list of colors the stroke cycles through
	Palette Palette
}

// DefaultConfig returns the screensaver's configuration
func DefaultConfig() Config {
	return Config{
		VertexCount:     7,
		TrailLength:     100,
		Speed:           4,
		PhaseStep:       0.01,
		FrameDelay:      12 * time.Millisecond,
		MotionThreshold: 2,
		Palette:         DefaultPalette(),
	}
}

// HistoryCapacity returns the number of edges kept in the trail
func (c Config) HistoryCapacity() int {
	return c.VertexCount * c.TrailLength
}

// TicksPerSecond converts FrameDelay into an update rate
func (c Config) TicksPerSecond() int {
	if c.FrameDelay <= 0 {
		return 60
	}
	return int(time.Second / c.FrameDelay)
}
