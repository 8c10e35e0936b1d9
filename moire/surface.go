package moire

import (
	"image"
)

// Surface is a fixed-size 32-bit pixel buffer.
// Writers must hold the lock; presenters flush it after Unlock.
type Surface struct {
	img     *image.RGBA
	locked  bool
	version uint64
}

// NewSurface creates a black surface of the given size
func NewSurface(width, height int) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s := &Surface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	s.Clear()
	return s
}

// Width returns the surface width in pixels
func (s *Surface) Width() int { return s.img.Rect.Dx() }

// Height returns the surface height in pixels
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// Lock acquires exclusive write access
func (s *Surface) Lock() {
	if s.locked {
		panic("moire: surface already locked")
	}
	s.locked = true
}

// Unlock releases write access and marks a new frame ready for presentation
func (s *Surface) Unlock() {
	if !s.locked {
		panic("moire: unlock of unlocked surface")
	}
	s.locked = false
	s.version++
}

// Locked reports whether a writer currently holds the surface
func (s *Surface) Locked() bool { return s.locked }

// Version increases by one on every Unlock
func (s *Surface) Version() uint64 { return s.version }

// Clear paints the whole surface with the background color
func (s *Surface) Clear() {
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = Background.R()
		pix[i+1] = Background.G()
		pix[i+2] = Background.B()
		pix[i+3] = 0xff
	}
}

// Set writes one pixel. Coordinates outside the surface are ignored.
func (s *Surface) Set(x, y int, c Color) bool {
	w, h := s.Width(), s.Height()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	i := (y*w + x) * 4
	pix := s.img.Pix[i : i+4 : i+4]
	pix[0] = c.R()
	pix[1] = c.G()
	pix[2] = c.B()
	pix[3] = 0xff
	return true
}

// At reads one pixel back. Coordinates outside the surface read as background.
func (s *Surface) At(x, y int) Color {
	w, h := s.Width(), s.Height()
	if x < 0 || y < 0 || x >= w || y >= h {
		return Background
	}
	i := (y*w + x) * 4
	return RGB(s.img.Pix[i], s.img.Pix[i+1], s.img.Pix[i+2])
}

// Image returns the backing image. Its Pix slice is laid out row by row,
// four bytes per pixel, which is what the presenters upload.
func (s *Surface) Image() *image.RGBA { return s.img }
