// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package chart draws framed line charts onto a panel target.
package chart

import (
	"math"

	"github.com/gogpu/panel"
	"github.com/gogpu/panel/pixfmt"
)

// Values returns the sample at index i, or false for a gap. A gap breaks
// the polyline.
type Values func(i int) (float32, bool)

// Chart is a line chart of fixed size.
type Chart struct {
	Width  int32
	Height int32

	Foreground pixfmt.RGB332
	// Background is reserved for the plot area; Draw does not fill it.
	Background pixfmt.RGB332
}

// New returns a chart of the given size and colors.
func New(width, height int32, fg, bg pixfmt.RGB332) *Chart {
	return &Chart{Width: width, Height: height, Foreground: fg, Background: bg}
}

// Draw frames the chart at (left, top) and plots n samples scaled so that
// lo sits on the bottom edge. Samples are spread evenly across the width.
//
// Nothing is drawn for n <= 0. When hi equals lo only the frame is
// drawn. The whole chart is one write transaction; write brackets do
// not nest, so call Draw outside StartWrite/EndWrite.
func (c *Chart) Draw(t panel.Target, left, top int32, n int, lo, hi float32, values Values) {
	if n <= 0 {
		return
	}

	t.StartWrite()
	defer t.EndWrite()

	right := left + c.Width - 1
	bottom := top + c.Height - 1
	fg := c.Foreground
	t.DrawLineRGB332(left, top, right, top, fg)
	t.DrawLineRGB332(left, bottom, right, bottom, fg)
	t.DrawLineRGB332(left, top, left, bottom, fg)
	t.DrawLineRGB332(right, top, right, bottom, fg)

	span := hi - lo
	if span == 0 {
		return
	}

	var prevX, prevY int32
	havePrev := false
	count := int32(n)
	for i := 0; i < n; i++ {
		x := (c.Width*int32(i)+count/2-1)/count + left
		v, ok := values(i)
		if !ok {
			havePrev = false
			continue
		}
		y := bottom - int32(math.Round(float64((v-lo)*float32(c.Height)/span)))
		if havePrev {
			t.DrawLineRGB332(prevX, prevY, x, y, fg)
		}
		prevX, prevY, havePrev = x, y, true
	}
}

// Range returns the smallest and largest of the n samples, skipping
// gaps. ok is false when every sample is a gap.
func Range(n int, values Values) (lo, hi float32, ok bool) {
	for i := 0; i < n; i++ {
		v, present := values(i)
		if !present {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}

// Slice adapts a slice to Values. NaN entries are gaps.
func Slice(s []float32) Values {
	return func(i int) (float32, bool) {
		if i < 0 || i >= len(s) {
			return 0, false
		}
		v := s[i]
		return v, !math.IsNaN(float64(v))
	}
}
