package pixfmt

import "image/color"

// RGBA implements color.Color.
func (c RGB332) RGBA() (r, g, b, a uint32) {
	return c.RGB888().RGBA()
}

// RGBA implements color.Color.
func (c Gray8) RGBA() (r, g, b, a uint32) {
	y := uint32(c)
	y |= y << 8
	return y, y, y, 0xFFFF
}

// RGBA implements color.Color.
func (c RGB888) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Color models converting arbitrary colors into each family. Alpha is
// dropped; callers that care about transparency must test it first.
var (
	RGB332Model color.Model = color.ModelFunc(rgb332Model)
	Gray8Model  color.Model = color.ModelFunc(gray8Model)
	RGB888Model color.Model = color.ModelFunc(rgb888Model)
)

// FromColor converts any color.Color to truecolor, ignoring alpha.
func FromColor(c color.Color) RGB888 {
	if t, ok := c.(RGB888); ok {
		return t & 0xFFFFFF
	}
	r, g, b, _ := c.RGBA()
	return NewRGB888(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func rgb332Model(c color.Color) color.Color {
	if v, ok := c.(RGB332); ok {
		return v
	}
	return FromColor(c).RGB332()
}

func gray8Model(c color.Color) color.Color {
	if v, ok := c.(Gray8); ok {
		return v
	}
	return FromColor(c).Gray8()
}

func rgb888Model(c color.Color) color.Color {
	return FromColor(c)
}

// Model returns the color.Model of f.
func (f Format) Model() color.Model {
	switch f {
	case FormatRGB332:
		return RGB332Model
	case FormatGray8:
		return Gray8Model
	default:
		return RGB888Model
	}
}
