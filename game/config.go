package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"moire/moire"
)

// ErrNoDisplay is returned when the desktop resolution cannot be determined
var ErrNoDisplay = errors.New("no usable display")

// Config holds display settings around the fixed animation constants
type Config struct {
	// Animation holds the simulation constants
	Animation moire.Config

	// ScreenWidth is the surface width in device pixels
	ScreenWidth int

	// ScreenHeight is the surface height in device pixels
	ScreenHeight int

	// Title is the window caption
	Title string
}

// DefaultConfig returns a configuration sized to the native desktop resolution
func DefaultConfig() (Config, error) {
	w, h := ebiten.ScreenSizeInFullscreen()
	if w <= 0 || h <= 0 {
		return Config{}, fmt.Errorf("fullscreen size %dx%d: %w", w, h, ErrNoDisplay)
	}

	// ScreenSizeInFullscreen reports device-independent pixels; scale to the
	// monitor's real resolution so lines stay one physical pixel wide
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}

	return Config{
		Animation:    moire.DefaultConfig(),
		ScreenWidth:  int(float64(w) * scale),
		ScreenHeight: int(float64(h) * scale),
		Title:        "Moire",
	}, nil
}
