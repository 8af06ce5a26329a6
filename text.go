package panel

import (
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/panel/font"
	"github.com/gogpu/panel/pixfmt"
)

// TextEncoding selects how Write decodes bytes into characters.
type TextEncoding uint8

const (
	// TextUTF8 decodes UTF-8. A sequence split across Write calls is
	// completed by the next call.
	TextUTF8 TextEncoding = iota
	// TextCP437 maps each byte through IBM code page 437, the character
	// set of the classic 8-bit panel fonts.
	TextCP437
)

// textState is the per-target text configuration.
type textState struct {
	font   *font.Font
	x, y   int32
	sx, sy float32

	fg, bg uint32
	opaque bool

	wrapX, wrapY bool
	enc          TextEncoding
	pending      []byte
}

func defaultTextState(f pixfmt.Format) textState {
	return textState{
		font:   font.Default(),
		sx:     1,
		sy:     1,
		fg:     f.Encode(pixfmt.White),
		bg:     f.Encode(pixfmt.Black),
		opaque: true,
		wrapX:  true,
	}
}

// SetCursor moves the text cursor. The cursor is the top-left corner of
// the next character cell.
func (s *surface) SetCursor(x, y int32) {
	s.text.x, s.text.y = x, y
}

// Cursor returns the text cursor.
func (s *surface) Cursor() (x, y int32) {
	return s.text.x, s.text.y
}

// SetTextSize sets the glyph scale used by Write.
func (s *surface) SetTextSize(sx, sy float32) {
	s.text.sx, s.text.sy = sx, sy
}

// TextSize returns the glyph scale used by Write.
func (s *surface) TextSize() (sx, sy float32) {
	return s.text.sx, s.text.sy
}

// SetTextColorRGB332 sets the colors used by Write. Equal colors draw
// glyphs without a background.
func (s *surface) SetTextColorRGB332(fg, bg pixfmt.RGB332) {
	s.setTextColor(pixfmt.Encode(s.format, fg), pixfmt.Encode(s.format, bg), fg != bg)
}

// SetTextColorGray sets the colors used by Write.
func (s *surface) SetTextColorGray(fg, bg pixfmt.Gray8) {
	s.setTextColor(pixfmt.Encode(s.format, fg), pixfmt.Encode(s.format, bg), fg != bg)
}

// SetTextColorRGB888 sets the colors used by Write.
func (s *surface) SetTextColorRGB888(fg, bg pixfmt.RGB888) {
	s.setTextColor(pixfmt.Encode(s.format, fg), pixfmt.Encode(s.format, bg), fg.RGB888() != bg.RGB888())
}

func (s *surface) setTextColor(fg, bg uint32, opaque bool) {
	s.text.fg, s.text.bg, s.text.opaque = fg, bg, opaque
}

// SetTextWrap controls what Write does at the edges: wrapX starts a new
// line when a character would cross the right edge, wrapY returns to the
// top after the bottom edge. The defaults are true and false.
func (s *surface) SetTextWrap(wrapX, wrapY bool) {
	s.text.wrapX, s.text.wrapY = wrapX, wrapY
}

// SetTextEncoding selects how Write decodes bytes. Switching drops any
// incomplete UTF-8 sequence.
func (s *surface) SetTextEncoding(e TextEncoding) {
	s.text.enc = e
	s.text.pending = s.text.pending[:0]
}

// SetFont selects the font for subsequent text. An identifier not wired
// into this build returns ErrUnknownFont and leaves the font unchanged.
func (s *surface) SetFont(id font.ID) error {
	f, ok := font.Resolve(id)
	if !ok {
		Logger().Debug("panel: font not available", "font", id.String())
		return ErrUnknownFont
	}
	s.text.font = f
	return nil
}

// Font returns the active font.
func (s *surface) Font() *font.Font {
	return s.text.font
}

// FontHeight returns the line height of the active font at the current
// text size.
func (s *surface) FontHeight() int32 {
	return scale(s.text.font.Height(), s.text.sy)
}

// Write draws p at the cursor with the text colors and size, advancing
// the cursor. '\n' moves to the start of the next line and '\r' is
// ignored. Write always consumes all of p and never fails, so a Target
// can be handed to fmt.Fprintf.
func (s *surface) Write(p []byte) (int, error) {
	s.begin()
	defer s.end()

	if s.text.enc == TextCP437 {
		for _, b := range p {
			s.putRune(charmap.CodePage437.DecodeByte(b))
		}
		return len(p), nil
	}

	data := p
	if len(s.text.pending) > 0 {
		data = append(append([]byte(nil), s.text.pending...), p...)
		s.text.pending = s.text.pending[:0]
	}
	for len(data) > 0 {
		if !utf8.FullRune(data) {
			s.text.pending = append(s.text.pending, data...)
			break
		}
		r, size := utf8.DecodeRune(data)
		s.putRune(r)
		data = data[size:]
	}
	return len(p), nil
}

// WriteString is Write for strings.
func (s *surface) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

func (s *surface) putRune(r rune) {
	t := &s.text
	switch r {
	case '\r':
		return
	case '\n':
		t.x = 0
		t.y += scale(t.font.Height(), t.sy)
		return
	}

	adv := scale(t.font.Advance(r), t.sx)
	if t.wrapX && t.x > 0 && t.x+adv > s.width {
		t.x = 0
		t.y += scale(t.font.Height(), t.sy)
	}
	if t.wrapY && t.y >= s.height {
		t.y = 0
	}
	s.drawChar(t.x, t.y, r, t.fg, t.bg, t.opaque, t.sx, t.sy)
	t.x += adv
}

// DrawCharRGB332 draws r with its cell's top-left at (x, y) and returns
// the scaled advance. The cursor does not move. Equal fg and bg draw no
// background.
func (s *surface) DrawCharRGB332(x, y int32, r rune, fg, bg pixfmt.RGB332, sx, sy float32) int32 {
	s.begin()
	defer s.end()
	return s.drawChar(x, y, r, pixfmt.Encode(s.format, fg), pixfmt.Encode(s.format, bg), fg != bg, sx, sy)
}

// DrawCharGray is DrawCharRGB332 for grayscale colors.
func (s *surface) DrawCharGray(x, y int32, r rune, fg, bg pixfmt.Gray8, sx, sy float32) int32 {
	s.begin()
	defer s.end()
	return s.drawChar(x, y, r, pixfmt.Encode(s.format, fg), pixfmt.Encode(s.format, bg), fg != bg, sx, sy)
}

// DrawCharRGB888 is DrawCharRGB332 for truecolor.
func (s *surface) DrawCharRGB888(x, y int32, r rune, fg, bg pixfmt.RGB888, sx, sy float32) int32 {
	s.begin()
	defer s.end()
	return s.drawChar(x, y, r, pixfmt.Encode(s.format, fg), pixfmt.Encode(s.format, bg), fg.RGB888() != bg.RGB888(), sx, sy)
}

// DrawStringRGB332 draws str positioned by anchor a relative to (x, y)
// and returns its scaled width.
func (s *surface) DrawStringRGB332(str string, x, y int32, fg, bg pixfmt.RGB332, sx, sy float32, a Anchor) int32 {
	return s.drawString(str, x, y, pixfmt.Encode(s.format, fg), pixfmt.Encode(s.format, bg), fg != bg, sx, sy, a)
}

// DrawStringGray is DrawStringRGB332 for grayscale colors.
func (s *surface) DrawStringGray(str string, x, y int32, fg, bg pixfmt.Gray8, sx, sy float32, a Anchor) int32 {
	return s.drawString(str, x, y, pixfmt.Encode(s.format, fg), pixfmt.Encode(s.format, bg), fg != bg, sx, sy, a)
}

// DrawStringRGB888 is DrawStringRGB332 for truecolor.
func (s *surface) DrawStringRGB888(str string, x, y int32, fg, bg pixfmt.RGB888, sx, sy float32, a Anchor) int32 {
	return s.drawString(str, x, y, pixfmt.Encode(s.format, fg), pixfmt.Encode(s.format, bg), fg.RGB888() != bg.RGB888(), sx, sy, a)
}

func (s *surface) drawString(str string, x, y int32, fg, bg uint32, opaque bool, sx, sy float32, a Anchor) int32 {
	f := s.text.font
	var w int32
	for _, r := range str {
		w += scale(f.Advance(r), sx)
	}
	h := scale(f.Height(), sy)
	x -= a.offsetX(w)
	y -= a.offsetY(h, scale(f.Ascent(), sy))

	s.begin()
	defer s.end()

	var adv int32
	for _, r := range str {
		adv += s.drawChar(x+adv, y, r, fg, bg, opaque, sx, sy)
	}
	return adv
}

// drawChar renders one glyph of the active font. Every mask row and
// column is stretched to the pixels its scaled bounds cover.
func (s *surface) drawChar(x, y int32, r rune, fg, bg uint32, opaque bool, sx, sy float32) int32 {
	f := s.text.font
	g := f.Glyph(r)
	adv := scale(g.Advance, sx)

	if opaque {
		s.span(x, y, adv, scale(f.Height(), sy), bg)
	}
	for _, run := range g.Runs {
		left := floorScale(run.X, sx)
		right := floorScale(run.X+run.Len, sx)
		top := floorScale(run.Y, sy)
		bottom := floorScale(run.Y+1, sy)
		s.span(x+left, y+top, right-left, bottom-top, fg)
	}
	return adv
}

// scale returns round(v * k).
func scale(v int32, k float32) int32 {
	return int32(math.Round(float64(v) * float64(k)))
}

func floorScale(v int32, k float32) int32 {
	return int32(math.Floor(float64(v) * float64(k)))
}
