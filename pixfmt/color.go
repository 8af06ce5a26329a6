// Package pixfmt implements the three pixel encodings a panel target can
// store and their conversion to and from canonical RGB888 truecolor.
//
// The encodings are disjoint value types. A value of one family is never
// reinterpreted as another: crossing families always goes through RGB888.
//
//	c := pixfmt.RGB888(0x00FF00)
//	idx := c.RGB332()          // 0x1C
//	back := idx.RGB888()       // 0x00FF00
package pixfmt

// RGB332 is an 8-bit indexed color with 3 bits red, 3 bits green and
// 2 bits blue, packed as RRRGGGBB.
type RGB332 uint8

// Gray8 is an 8-bit intensity. 0 maps to a ramp's black point and 255 to
// its white point; see GrayRamp.
type Gray8 uint8

// RGB888 is a 24-bit truecolor packed as 0x00RRGGBB. The top byte is
// ignored.
type RGB888 uint32

// NewRGB332 packs 8-bit channels into an RGB332 color.
func NewRGB332(r, g, b uint8) RGB332 {
	return RGB332(r&0xE0 | (g>>3)&0x1C | b>>6)
}

// NewRGB888 packs 8-bit channels into an RGB888 color.
func NewRGB888(r, g, b uint8) RGB888 {
	return RGB888(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB888 expands the color to truecolor. The bits below each channel's
// field are filled with copies of the field's lowest bit, so a full field
// maps to 0xFF, an empty one to 0x00 and blue 0b01 to 0x7F.
func (c RGB332) RGB888() RGB888 {
	r := uint8(c) & 0xE0
	g := (uint8(c) & 0x1C) << 3
	b := (uint8(c) & 0x03) << 6
	r |= (0 - (r >> 5 & 1)) & 0x1F
	g |= (0 - (g >> 5 & 1)) & 0x1F
	b |= (0 - (b >> 6 & 1)) & 0x3F
	return NewRGB888(r, g, b)
}

// Format returns FormatRGB332.
func (RGB332) Format() Format { return FormatRGB332 }

// RGB888 maps the intensity through DefaultGrayRamp.
func (c Gray8) RGB888() RGB888 {
	return NewRGB888(uint8(c), uint8(c), uint8(c))
}

// Format returns FormatGray8.
func (Gray8) Format() Format { return FormatGray8 }

// RGB888 returns c with the unused top byte cleared.
func (c RGB888) RGB888() RGB888 { return c & 0xFFFFFF }

// Format returns FormatRGB888.
func (RGB888) Format() Format { return FormatRGB888 }

// R returns the red channel.
func (c RGB888) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB888) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB888) B() uint8 { return uint8(c) }

// RGB332 truncates the color to 3/3/2 bits.
func (c RGB888) RGB332() RGB332 {
	return NewRGB332(c.R(), c.G(), c.B())
}

// Gray8 returns the luma of the color, weighting green twice.
func (c RGB888) Gray8() Gray8 {
	return Gray8((uint32(c.R()) + uint32(c.G())<<1 + uint32(c.B())) >> 2)
}

// Color is the closed set of color families accepted by drawing entry
// points. It is used as a type constraint only.
type Color interface {
	RGB332 | Gray8 | RGB888
	Format() Format
	RGB888() RGB888
}

// Encode returns the native sample of c in format f. A color whose family
// matches f is stored unchanged (RGB888 drops its top byte); any other
// color is converted through RGB888.
func Encode[C Color](f Format, c C) uint32 {
	if c.Format() == f {
		return uint32(c) & 0xFFFFFF
	}
	return f.Encode(c.RGB888())
}

// Common colors.
const (
	Black   RGB888 = 0x000000
	White   RGB888 = 0xFFFFFF
	Red     RGB888 = 0xFF0000
	Green   RGB888 = 0x00FF00
	Blue    RGB888 = 0x0000FF
	Yellow  RGB888 = 0xFFFF00
	Cyan    RGB888 = 0x00FFFF
	Magenta RGB888 = 0xFF00FF
)

// GrayRamp maps Gray8 intensities onto a line between two reference
// colors.
type GrayRamp struct {
	Black RGB888
	White RGB888
}

// DefaultGrayRamp maps 0 to black and 255 to white.
var DefaultGrayRamp = GrayRamp{Black: Black, White: White}

// Map returns the truecolor for intensity g.
func (r GrayRamp) Map(g Gray8) RGB888 {
	lerp := func(a, b uint8) uint8 {
		return uint8((int(a)*(255-int(g)) + int(b)*int(g) + 127) / 255)
	}
	return NewRGB888(
		lerp(r.Black.R(), r.White.R()),
		lerp(r.Black.G(), r.White.G()),
		lerp(r.Black.B(), r.White.B()),
	)
}
