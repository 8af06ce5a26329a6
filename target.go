package panel

import (
	"github.com/gogpu/panel/font"
	"github.com/gogpu/panel/internal/image"
	"github.com/gogpu/panel/pixfmt"
)

// Target is a drawing surface: the Device or a Sprite.
//
// Drawing methods clip to the target and never fail. Methods are grouped
// by color family; the RGB332 variants take 8-bit indexed colors, the Gray
// variants 8-bit intensities and the RGB888 variants truecolor.
//
// A Target is not safe for concurrent use. Only *Device and *Sprite
// implement it.
type Target interface {
	// Width and Height return the extents in pixels.
	Width() int32
	Height() int32
	// Format returns the native pixel format.
	Format() pixfmt.Format

	ClearRGB332(c pixfmt.RGB332)
	ClearGray(c pixfmt.Gray8)
	ClearRGB888(c pixfmt.RGB888)

	FillRectRGB332(left, top, w, h int32, c pixfmt.RGB332)
	FillRectGray(left, top, w, h int32, c pixfmt.Gray8)
	FillRectRGB888(left, top, w, h int32, c pixfmt.RGB888)

	DrawLineRGB332(x0, y0, x1, y1 int32, c pixfmt.RGB332)
	DrawLineGray(x0, y0, x1, y1 int32, c pixfmt.Gray8)
	DrawLineRGB888(x0, y0, x1, y1 int32, c pixfmt.RGB888)

	DrawPixelRGB332(x, y int32, c pixfmt.RGB332)
	DrawPixelGray(x, y int32, c pixfmt.Gray8)
	DrawPixelRGB888(x, y int32, c pixfmt.RGB888)

	PushImageRGB332(x, y, w, h int32, data []pixfmt.RGB332)
	PushImageGray(x, y, w, h int32, data []pixfmt.Gray8, ramp pixfmt.GrayRamp)
	PushImageRGB888(x, y, w, h int32, data []pixfmt.RGB888)

	DrawPNG(data []byte, opts *DrawImageOptions) error
	DrawImage(data []byte, opts *DrawImageOptions) error

	SetCursor(x, y int32)
	Cursor() (x, y int32)
	SetTextSize(sx, sy float32)
	TextSize() (sx, sy float32)
	SetTextColorRGB332(fg, bg pixfmt.RGB332)
	SetTextColorGray(fg, bg pixfmt.Gray8)
	SetTextColorRGB888(fg, bg pixfmt.RGB888)
	SetTextWrap(wrapX, wrapY bool)
	SetTextEncoding(e TextEncoding)
	Write(p []byte) (n int, err error)

	DrawCharRGB332(x, y int32, r rune, fg, bg pixfmt.RGB332, sx, sy float32) int32
	DrawCharGray(x, y int32, r rune, fg, bg pixfmt.Gray8, sx, sy float32) int32
	DrawCharRGB888(x, y int32, r rune, fg, bg pixfmt.RGB888, sx, sy float32) int32

	DrawStringRGB332(s string, x, y int32, fg, bg pixfmt.RGB332, sx, sy float32, a Anchor) int32
	DrawStringGray(s string, x, y int32, fg, bg pixfmt.Gray8, sx, sy float32, a Anchor) int32
	DrawStringRGB888(s string, x, y int32, fg, bg pixfmt.RGB888, sx, sy float32, a Anchor) int32

	SetFont(id font.ID) error
	Font() *font.Font
	FontHeight() int32

	StartWrite()
	EndWrite()

	base() *surface
}

// canvas is where a surface's clipped operations land: a transport for
// the device, a buffer for a sprite.
type canvas interface {
	fillRect(x, y, w, h int32, px uint32)
	writePixels(x, y, w, h int32, pix []uint32)
	begin()
	end()
}

type transportCanvas struct {
	t Transport
}

func (c transportCanvas) fillRect(x, y, w, h int32, px uint32) { c.t.FillRect(x, y, w, h, px) }
func (c transportCanvas) writePixels(x, y, w, h int32, pix []uint32) {
	c.t.WritePixels(x, y, w, h, pix)
}
func (c transportCanvas) begin() { c.t.BeginWrite() }
func (c transportCanvas) end()   { c.t.EndWrite() }

type bufCanvas struct {
	buf *image.Buf
}

func (c bufCanvas) fillRect(x, y, w, h int32, px uint32) {
	c.buf.Fill(int(x), int(y), int(w), int(h), px)
}

func (c bufCanvas) writePixels(x, y, w, h int32, pix []uint32) {
	for row := int32(0); row < h; row++ {
		c.buf.WriteRow(int(x), int(y+row), pix[row*w:(row+1)*w])
	}
}

func (bufCanvas) begin() {}
func (bufCanvas) end()   {}

// closedCanvas discards everything drawn on a closed sprite.
type closedCanvas struct{}

func (closedCanvas) fillRect(int32, int32, int32, int32, uint32)      {}
func (closedCanvas) writePixels(int32, int32, int32, int32, []uint32) {}
func (closedCanvas) begin()                                           {}
func (closedCanvas) end()                                             {}

// surface is the state shared by every Target.
type surface struct {
	cv     canvas
	width  int32
	height int32
	format pixfmt.Format
	alloc  image.Allocator

	writing bool

	text textState
}

func newSurface(cv canvas, width, height int32, format pixfmt.Format, alloc image.Allocator) *surface {
	s := &surface{
		cv:     cv,
		width:  width,
		height: height,
		format: format,
		alloc:  alloc,
	}
	s.text = defaultTextState(format)
	return s
}

func (s *surface) base() *surface { return s }

// Width returns the width in pixels.
func (s *surface) Width() int32 { return s.width }

// Height returns the height in pixels.
func (s *surface) Height() int32 { return s.height }

// Format returns the native pixel format.
func (s *surface) Format() pixfmt.Format { return s.format }

// StartWrite opens a transaction: drawing until EndWrite reaches the
// panel as one transfer. Calling StartWrite inside an open transaction
// has no defined meaning.
func (s *surface) StartWrite() {
	if s.writing {
		return
	}
	s.writing = true
	s.cv.begin()
}

// EndWrite closes the transaction opened by StartWrite.
func (s *surface) EndWrite() {
	if !s.writing {
		return
	}
	s.writing = false
	s.cv.end()
}

// begin and end bracket a single operation unless a transaction is open.
func (s *surface) begin() {
	if !s.writing {
		s.cv.begin()
	}
}

func (s *surface) end() {
	if !s.writing {
		s.cv.end()
	}
}

// clip intersects the rectangle with the surface. The arithmetic is done
// in int64 so extreme coordinates cannot wrap.
func (s *surface) clip(x, y, w, h int32) (cx, cy, cw, ch int32, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	x0, y0 := max(int64(x), 0), max(int64(y), 0)
	x1 := min(int64(x)+int64(w), int64(s.width))
	y1 := min(int64(y)+int64(h), int64(s.height))
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return int32(x0), int32(y0), int32(x1 - x0), int32(y1 - y0), true
}

// span fills a clipped rectangle without opening a transfer.
func (s *surface) span(x, y, w, h int32, px uint32) {
	if cx, cy, cw, ch, ok := s.clip(x, y, w, h); ok {
		s.cv.fillRect(cx, cy, cw, ch, px)
	}
}
