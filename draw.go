package panel

import (
	"math/bits"

	"github.com/gogpu/panel/pixfmt"
)

// ClearRGB332 fills the whole target with c.
func (s *surface) ClearRGB332(c pixfmt.RGB332) { s.fill(0, 0, s.width, s.height, pixfmt.Encode(s.format, c)) }

// ClearGray fills the whole target with c.
func (s *surface) ClearGray(c pixfmt.Gray8) { s.fill(0, 0, s.width, s.height, pixfmt.Encode(s.format, c)) }

// ClearRGB888 fills the whole target with c.
func (s *surface) ClearRGB888(c pixfmt.RGB888) { s.fill(0, 0, s.width, s.height, pixfmt.Encode(s.format, c)) }

// FillRectRGB332 fills the rectangle at (left, top) of size w x h, clipped
// to the target. Non-positive sizes draw nothing.
func (s *surface) FillRectRGB332(left, top, w, h int32, c pixfmt.RGB332) {
	s.fill(left, top, w, h, pixfmt.Encode(s.format, c))
}

// FillRectGray is FillRectRGB332 for grayscale colors.
func (s *surface) FillRectGray(left, top, w, h int32, c pixfmt.Gray8) {
	s.fill(left, top, w, h, pixfmt.Encode(s.format, c))
}

// FillRectRGB888 is FillRectRGB332 for truecolor.
func (s *surface) FillRectRGB888(left, top, w, h int32, c pixfmt.RGB888) {
	s.fill(left, top, w, h, pixfmt.Encode(s.format, c))
}

// DrawLineRGB332 draws a one pixel wide line including both endpoints.
func (s *surface) DrawLineRGB332(x0, y0, x1, y1 int32, c pixfmt.RGB332) {
	s.line(x0, y0, x1, y1, pixfmt.Encode(s.format, c))
}

// DrawLineGray draws a one pixel wide line including both endpoints.
func (s *surface) DrawLineGray(x0, y0, x1, y1 int32, c pixfmt.Gray8) {
	s.line(x0, y0, x1, y1, pixfmt.Encode(s.format, c))
}

// DrawLineRGB888 draws a one pixel wide line including both endpoints.
func (s *surface) DrawLineRGB888(x0, y0, x1, y1 int32, c pixfmt.RGB888) {
	s.line(x0, y0, x1, y1, pixfmt.Encode(s.format, c))
}

// DrawPixelRGB332 sets one pixel; off-target coordinates draw nothing.
func (s *surface) DrawPixelRGB332(x, y int32, c pixfmt.RGB332) {
	s.fill(x, y, 1, 1, pixfmt.Encode(s.format, c))
}

// DrawPixelGray is DrawPixelRGB332 for grayscale colors.
func (s *surface) DrawPixelGray(x, y int32, c pixfmt.Gray8) {
	s.fill(x, y, 1, 1, pixfmt.Encode(s.format, c))
}

// DrawPixelRGB888 is DrawPixelRGB332 for truecolor.
func (s *surface) DrawPixelRGB888(x, y int32, c pixfmt.RGB888) {
	s.fill(x, y, 1, 1, pixfmt.Encode(s.format, c))
}

// PushImageRGB332 copies a w x h block of RGB332 samples, row-major, to
// (x, y). data must hold at least w*h samples.
func (s *surface) PushImageRGB332(x, y, w, h int32, data []pixfmt.RGB332) {
	lut := pixfmt.NewLUT(pixfmt.FormatRGB332, s.format)
	s.push(x, y, w, h, func(i int) uint32 { return lut[data[i]] })
}

// PushImageGray copies a w x h block of intensities, mapped through ramp
// when the target is not a plain grayscale target.
func (s *surface) PushImageGray(x, y, w, h int32, data []pixfmt.Gray8, ramp pixfmt.GrayRamp) {
	lut := pixfmt.NewRampLUT(ramp, s.format)
	s.push(x, y, w, h, func(i int) uint32 { return lut[data[i]] })
}

// PushImageRGB888 copies a w x h block of truecolor samples.
func (s *surface) PushImageRGB888(x, y, w, h int32, data []pixfmt.RGB888) {
	f := s.format
	s.push(x, y, w, h, func(i int) uint32 { return pixfmt.Encode(f, data[i]) })
}

func (s *surface) fill(x, y, w, h int32, px uint32) {
	cx, cy, cw, ch, ok := s.clip(x, y, w, h)
	if !ok {
		return
	}
	s.begin()
	s.cv.fillRect(cx, cy, cw, ch, px)
	s.end()
}

// push clips the block and streams it row by row; sample(i) returns the
// native sample of source index i.
func (s *surface) push(x, y, w, h int32, sample func(i int) uint32) {
	cx, cy, cw, ch, ok := s.clip(x, y, w, h)
	if !ok {
		return
	}
	sx, sy := cx-x, cy-y
	row := make([]uint32, cw)

	s.begin()
	for r := int32(0); r < ch; r++ {
		base := int(sy+r)*int(w) + int(sx)
		for i := range row {
			row[i] = sample(base + i)
		}
		s.cv.writePixels(cx, cy+r, cw, 1, row)
	}
	s.end()
}

// line draws with Bresenham's algorithm, emitting each run of pixels on
// the major axis as one rectangle. The segment is clipped on the major
// axis before stepping, and the error term at the clipped start is
// computed directly, so off-surface lengths cost nothing.
func (s *surface) line(x0, y0, x1, y1 int32, px uint32) {
	s.begin()
	defer s.end()

	ax0, ay0, ax1, ay1 := int64(x0), int64(y0), int64(x1), int64(y1)
	if ay0 == ay1 {
		if lo, hi, ok := band(ax0, ax1, int64(s.width)); ok {
			s.span(int32(lo), y0, int32(hi-lo+1), 1, px)
		}
		return
	}
	if ax0 == ax1 {
		if lo, hi, ok := band(ay0, ay1, int64(s.height)); ok {
			s.span(x0, int32(lo), 1, int32(hi-lo+1), px)
		}
		return
	}

	major, minor := int64(s.width), int64(s.height)
	steep := abs64(ay1-ay0) > abs64(ax1-ax0)
	if steep {
		ax0, ay0 = ay0, ax0
		ax1, ay1 = ay1, ax1
		major, minor = minor, major
	}
	if ax0 > ax1 {
		ax0, ax1 = ax1, ax0
		ay0, ay1 = ay1, ay0
	}

	dx := ax1 - ax0
	dy := abs64(ay1 - ay0)
	ystep := int64(1)
	if ay0 > ay1 {
		ystep = -1
	}

	xs, xe := max(ax0, 0), min(ax1, major-1)
	if xs > xe {
		return
	}
	n, err := bresenhamAt(uint64(xs-ax0), uint64(dy), uint64(dx))
	y := ay0 + ystep*int64(n)

	run := func(start, end, at int64) {
		if steep {
			s.span(int32(at), int32(start), 1, int32(end-start+1), px)
		} else {
			s.span(int32(start), int32(at), int32(end-start+1), 1, px)
		}
	}

	start := xs
	for x := xs; x <= xe; x++ {
		err -= dy
		if err < 0 {
			run(start, x, y)
			y += ystep
			err += dx
			start = x + 1
			if (ystep > 0 && y >= minor) || (ystep < 0 && y < 0) {
				return
			}
		}
	}
	if start <= xe {
		run(start, xe, y)
	}
}

// bresenhamAt returns the minor-axis steps taken and the error term
// after k major-axis steps of a line with extents dx >= dy, starting
// from an error of dx/2. Products are taken in 128 bits.
func bresenhamAt(k, dy, dx uint64) (n uint64, err int64) {
	half := dx / 2
	hi, lo := bits.Mul64(k, dy)
	if hi == 0 && lo <= half {
		return 0, int64(half - lo)
	}
	lo, borrow := bits.Sub64(lo, half, 0)
	hi -= borrow
	q, r := bits.Div64(hi, lo, dx)
	if r == 0 {
		return q, 0
	}
	return q + 1, int64(dx - r)
}

// band orders a and b and clamps them to [0, limit).
func band(a, b, limit int64) (lo, hi int64, ok bool) {
	if b < a {
		a, b = b, a
	}
	lo, hi = max(a, 0), min(b, limit-1)
	return lo, hi, lo <= hi
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
