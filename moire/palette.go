// Package moire implements the bouncing-polygon animation: color cycling,
// line rasterizing, the bounded trail history and the per-frame simulation.
// It has no display dependencies; the game and terminal packages present it.
package moire

import "math"

// Color is a packed 0xRRGGBB value
type Color uint32

// Background is the color used to erase old trail edges
const Background Color = 0x000000

// RGB packs three channels into a Color
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// Palette is a circular sequence of colors
type Palette []Color

// DefaultPalette returns the stroke colors in cycling order
func DefaultPalette() Palette {
	return Palette{
		0x00FF00, // Green
		0x00FFFF, // Cyan
		0x0000FF, // Blue
		0xFF00FF, // Magenta
		0xFF0000, // Red
		0xFFFF00, // Yellow
	}
}

// CycleColor blends the two palette entries bracketing phase.
// The integer part of phase picks the entry (wrapping around the palette)
// and the fractional part is the weight of the following entry.
func CycleColor(p Palette, phase float64) Color {
	if len(p) == 0 {
		return Background
	}
	if phase < 0 {
		phase = 0
	}

	base := math.Floor(phase)
	along := phase - base
	index := uint64(base) % uint64(len(p))

	c1 := p[index]
	c2 := p[(index+1)%uint64(len(p))]

	return RGB(
		blendChannel(c1.R(), c2.R(), along),
		blendChannel(c1.G(), c2.G(), along),
		blendChannel(c1.B(), c2.B(), along),
	)
}

// blendChannel interpolates one channel, rounding half up
func blendChannel(a, b uint8, t float64) uint8 {
	v := float64(a)*(1-t) + float64(b)*t + 0.5
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
