package panel

import (
	"image"
	"sync"

	"github.com/gogpu/panel/pixfmt"
)

// Framebuffer defaults, the size of the M5Paper panel.
const (
	DefaultWidth  = 960
	DefaultHeight = 540
)

// Framebuffer is an in-memory Transport. It keeps the panel contents as
// native samples and counts transfers, which makes it the transport of
// choice for tests and for rendering to image files.
//
// Framebuffer is safe for concurrent use.
type Framebuffer struct {
	mu     sync.Mutex
	width  int32
	height int32
	format pixfmt.Format
	pix    []uint32
	mode   RefreshMode

	depth     int
	transfers int
	fills     int
	writes    int
}

// NewFramebuffer creates a framebuffer of the given size and format.
func NewFramebuffer(width, height int32, format pixfmt.Format) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		format: format,
		pix:    make([]uint32, int(width)*int(height)),
	}
}

// Init implements Transport.
func (f *Framebuffer) Init() error {
	if f.width <= 0 || f.height <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// Size implements Transport.
func (f *Framebuffer) Size() (width, height int32) {
	return f.width, f.height
}

// Format implements Transport.
func (f *Framebuffer) Format() pixfmt.Format {
	return f.format
}

// SetRefreshMode implements Transport.
func (f *Framebuffer) SetRefreshMode(m RefreshMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = m
	return nil
}

// RefreshMode returns the mode last set.
func (f *Framebuffer) RefreshMode() RefreshMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// BeginWrite implements Transport.
func (f *Framebuffer) BeginWrite() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.depth++
}

// EndWrite implements Transport. The outermost EndWrite completes a
// transfer.
func (f *Framebuffer) EndWrite() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.depth == 0 {
		return
	}
	f.depth--
	if f.depth == 0 {
		f.transfers++
	}
}

// FillRect implements Transport.
func (f *Framebuffer) FillRect(x, y, w, h int32, px uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fills++
	for row := y; row < y+h; row++ {
		span := f.pix[int(row)*int(f.width)+int(x):][:w]
		for i := range span {
			span[i] = px
		}
	}
}

// WritePixels implements Transport.
func (f *Framebuffer) WritePixels(x, y, w, h int32, pix []uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	for row := int32(0); row < h; row++ {
		copy(f.pix[int(y+row)*int(f.width)+int(x):][:w], pix[int(row)*int(w):])
	}
}

// At returns the native sample at (x, y).
func (f *Framebuffer) At(x, y int32) uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pix[int(y)*int(f.width)+int(x)]
}

// FramebufferStats counts the operations a framebuffer has seen.
type FramebufferStats struct {
	// Transfers counts completed BeginWrite/EndWrite brackets.
	Transfers int
	// Fills and Writes count FillRect and WritePixels calls.
	Fills  int
	Writes int
}

// Stats returns the operation counters.
func (f *Framebuffer) Stats() FramebufferStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FramebufferStats{Transfers: f.transfers, Fills: f.fills, Writes: f.writes}
}

// Snapshot returns the panel contents as an RGBA image.
func (f *Framebuffer) Snapshot() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, int(f.width), int(f.height)))
	for i, px := range f.pix {
		c := f.format.Decode(px)
		o := i * 4
		img.Pix[o+0] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = 0xFF
	}
	return img
}

func init() {
	RegisterDriver("framebuffer", 10, func(cfg DriverConfig) (Transport, error) {
		w, h := cfg.Width, cfg.Height
		if w <= 0 || h <= 0 {
			w, h = DefaultWidth, DefaultHeight
		}
		format := pixfmt.FormatRGB888
		if cfg.HasFormat {
			format = cfg.Format
		}
		return NewFramebuffer(w, h, format), nil
	}, nil)
}
