package moire

import "testing"

func TestSurfaceLockVersion(t *testing.T) {
	s := NewSurface(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size %dx%d", s.Width(), s.Height())
	}

	s.Lock()
	if !s.Locked() {
		t.Error("not locked after Lock")
	}
	s.Unlock()
	s.Lock()
	s.Unlock()
	if s.Version() != 2 {
		t.Errorf("version = %d, want 2", s.Version())
	}
}

func TestSurfaceDoubleLockPanics(t *testing.T) {
	s := NewSurface(2, 2)
	s.Lock()
	defer func() {
		if recover() == nil {
			t.Error("second Lock did not panic")
		}
	}()
	s.Lock()
}

func TestSurfaceSetAt(t *testing.T) {
	s := NewSurface(3, 3)
	if !s.Set(2, 1, testStroke) {
		t.Fatal("in-bounds Set reported false")
	}
	if got := s.At(2, 1); got != testStroke {
		t.Errorf("At = %06x", uint32(got))
	}

	// Flat layout: pixel (x, y) lives at (y*width + x) * 4
	pix := s.Image().Pix
	i := (1*3 + 2) * 4
	if pix[i] != testStroke.R() || pix[i+1] != testStroke.G() || pix[i+2] != testStroke.B() || pix[i+3] != 0xff {
		t.Errorf("raw pixel = %v", pix[i:i+4])
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if s.Set(p[0], p[1], testStroke) {
			t.Errorf("Set%v accepted out-of-bounds pixel", p)
		}
		if s.At(p[0], p[1]) != Background {
			t.Errorf("At%v not background", p)
		}
	}

	s.Clear()
	if len(litPixels(s)) != 0 {
		t.Error("Clear left lit pixels")
	}
}
