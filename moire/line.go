package moire

import "math"

// DrawLine rasterizes a straight line into s with equal-step interpolation.
// Both endpoints are drawn and each sample lands on the pixel containing it.
// A zero-length line draws a single pixel and samples that fall outside the
// surface are clipped. The caller holds the lock.
func DrawLine(s *Surface, x1, y1, x2, y2 int, c Color) {
	dx := x2 - x1
	dy := y2 - y1

	length := int(math.Round(math.Max(math.Abs(float64(dx)), math.Abs(float64(dy)))))
	if length == 0 {
		s.Set(x1, y1, c)
		return
	}

	// Each sample is measured from the start point so the last one lands
	// exactly on (x2, y2) instead of drifting with accumulated steps.
	fx1, fy1 := float64(x1), float64(y1)
	fdx, fdy := float64(dx), float64(dy)
	flen := float64(length)
	for i := 0; i <= length; i++ {
		along := float64(i)
		x := fx1 + along*fdx/flen
		y := fy1 + along*fdy/flen
		s.Set(int(math.Floor(x)), int(math.Floor(y)), c)
	}
}
