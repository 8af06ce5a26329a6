package panel

import (
	"testing"

	"github.com/gogpu/panel/pixfmt"
)

// resetDevice forgets the acquired device so a test can call Setup.
func resetDevice(t *testing.T) {
	t.Helper()
	forget := func() {
		setupMu.Lock()
		device = nil
		setupMu.Unlock()
	}
	forget()
	t.Cleanup(forget)
}

// newTestDevice sets up a device over a fresh framebuffer.
func newTestDevice(t *testing.T, w, h int32, f pixfmt.Format, opts ...Option) (*Device, *Framebuffer) {
	t.Helper()
	resetDevice(t)

	fb := NewFramebuffer(w, h, f)
	d, err := Setup(append([]Option{WithTransport(fb)}, opts...)...)
	if err != nil {
		t.Fatalf("Setup() = %v", err)
	}
	return d, fb
}

// countPixels returns how many framebuffer pixels equal px.
func countPixels(fb *Framebuffer, px uint32) int {
	w, h := fb.Size()
	n := 0
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			if fb.At(x, y) == px {
				n++
			}
		}
	}
	return n
}

// spriteAt reads a sprite's native sample.
func spriteAt(s *Sprite, x, y int) uint32 {
	return s.buf.At(x, y)
}
