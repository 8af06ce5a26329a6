package panel

import (
	"errors"
	"fmt"

	"github.com/gogpu/panel/internal/image"
	"github.com/gogpu/panel/pixfmt"
)

// Sprite is an off-screen target composited onto its parent with Push.
//
// A sprite has its own cursor, text settings and transaction state; none
// of them affect the parent.
type Sprite struct {
	*surface

	parent Target
	buf    *image.Buf
}

// NewSprite creates a w x h sprite in the parent's pixel format. Its
// pixels come from the parent's allocator and go back on Close.
//
// It returns ErrInvalidDimensions for a non-positive size and
// ErrOutOfMemory when the allocator refuses; nothing stays allocated
// on failure.
func NewSprite(parent Target, w, h int32) (*Sprite, error) {
	p := parent.base()
	buf, err := image.NewBuf(int(w), int(h), p.format, p.alloc)
	if err != nil {
		if errors.Is(err, image.ErrOutOfMemory) {
			Logger().Warn("panel: sprite allocation failed",
				"width", w, "height", h, "format", p.format.String())
		}
		return nil, fmt.Errorf("panel: new sprite %dx%d: %w", w, h, err)
	}
	return newSprite(parent, buf), nil
}

// NewStaticSprite creates a w x h sprite drawing into buf, which the
// caller keeps owning. bpp is 8 or 32: 8 selects Gray8 under a Gray8
// parent and RGB332 otherwise, 32 selects RGB888.
//
// buf must hold w*h*bpp/8 bytes; bytes past that are never touched.
// Other depths or a short buf panic.
func NewStaticSprite(parent Target, w, h int32, buf []byte, bpp uint8) *Sprite {
	p := parent.base()
	format, ok := pixfmt.FormatForDepth(bpp, p.format == pixfmt.FormatGray8)
	if !ok {
		panic(fmt.Sprintf("panel: unsupported static sprite depth %d", bpp))
	}
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("panel: invalid static sprite size %dx%d", w, h))
	}
	if need := format.BufferSize(int(w), int(h)); len(buf) < need {
		panic(fmt.Sprintf("panel: static sprite buffer has %d bytes, need %d", len(buf), need))
	}
	return newSprite(parent, image.FromRaw(buf, int(w), int(h), format))
}

func newSprite(parent Target, buf *image.Buf) *Sprite {
	p := parent.base()
	return &Sprite{
		surface: newSurface(bufCanvas{buf: buf}, int32(buf.Width()), int32(buf.Height()), buf.Format(), p.alloc),
		parent:  parent,
		buf:     buf,
	}
}

// Parent returns the target the sprite was created from.
func (s *Sprite) Parent() Target {
	return s.parent
}

// Owned reports whether the sprite's pixels were allocated by NewSprite.
func (s *Sprite) Owned() bool {
	return s.buf.Owned()
}

// Closed reports whether Close has been called.
func (s *Sprite) Closed() bool {
	return s.buf.Released()
}

// Push copies the sprite onto its parent with its top-left at (x, y),
// clipped to the parent. Pixels are converted when the formats differ.
// Pushing a closed sprite does nothing.
func (s *Sprite) Push(x, y int32) {
	if s.buf.Released() {
		return
	}
	p := s.parent.base()
	cx, cy, cw, ch, ok := p.clip(x, y, s.width, s.height)
	if !ok {
		return
	}
	sx, sy := int(cx-x), int(cy-y)

	convert := func([]uint32) {}
	switch {
	case s.format == p.format:
	case s.format.BytesPerPixel() == 1:
		lut := pixfmt.NewLUT(s.format, p.format)
		convert = func(row []uint32) {
			for i, v := range row {
				row[i] = lut[v]
			}
		}
	default:
		convert = func(row []uint32) {
			for i, v := range row {
				row[i] = p.format.Encode(pixfmt.RGB888(v))
			}
		}
	}

	row := make([]uint32, cw)
	p.begin()
	for r := int32(0); r < ch; r++ {
		s.buf.ReadRow(sx, sy+int(r), row)
		convert(row)
		p.cv.writePixels(cx, cy+r, cw, 1, row)
	}
	p.end()
}

// Close releases an owned sprite's pixels back to the allocator; a static
// sprite's buffer is left alone. Drawing on a closed sprite is discarded.
// Close is idempotent and always returns nil.
func (s *Sprite) Close() error {
	if s.buf.Released() {
		return nil
	}
	s.buf.Release()
	s.cv = closedCanvas{}
	return nil
}
