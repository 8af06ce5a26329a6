package pixfmt

// Format is the storage encoding of a target's pixels.
type Format uint8

const (
	// FormatRGB332 stores one RGB332 byte per pixel.
	FormatRGB332 Format = iota

	// FormatGray8 stores one intensity byte per pixel.
	FormatGray8

	// FormatRGB888 stores one little-endian 32-bit word per pixel
	// (bytes B, G, R, unused).
	FormatRGB888

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	Name          string
	BitsPerPixel  int
	BytesPerPixel int
	IsGrayscale   bool

	encode func(RGB888) uint32
	decode func(uint32) RGB888
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatRGB332: {
		Name:          "rgb332",
		BitsPerPixel:  8,
		BytesPerPixel: 1,
		encode:        func(c RGB888) uint32 { return uint32(c.RGB332()) },
		decode:        func(px uint32) RGB888 { return RGB332(px).RGB888() },
	},
	FormatGray8: {
		Name:          "gray8",
		BitsPerPixel:  8,
		BytesPerPixel: 1,
		IsGrayscale:   true,
		encode:        func(c RGB888) uint32 { return uint32(c.Gray8()) },
		decode:        func(px uint32) RGB888 { return Gray8(px).RGB888() },
	},
	FormatRGB888: {
		Name:          "rgb888",
		BitsPerPixel:  32,
		BytesPerPixel: 4,
		encode:        func(c RGB888) uint32 { return uint32(c & 0xFFFFFF) },
		decode:        func(px uint32) RGB888 { return RGB888(px & 0xFFFFFF) },
	},
}

// Info returns the FormatInfo for f, or the zero value for an invalid
// format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid reports whether f is one of the defined formats.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns the lower-case format name.
func (f Format) String() string {
	if !f.IsValid() {
		return "invalid"
	}
	return formatInfoTable[f].Name
}

// BitsPerPixel returns the storage depth.
func (f Format) BitsPerPixel() int {
	return f.Info().BitsPerPixel
}

// BytesPerPixel returns the storage size of one sample.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// RowBytes returns the bytes needed for width pixels.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// BufferSize returns the bytes needed for a width x height surface.
func (f Format) BufferSize(width, height int) int {
	return f.RowBytes(width) * height
}

// Encode converts a truecolor value to a native sample of f.
func (f Format) Encode(c RGB888) uint32 {
	return formatInfoTable[f].encode(c)
}

// Decode converts a native sample of f to truecolor.
func (f Format) Decode(px uint32) RGB888 {
	return formatInfoTable[f].decode(px)
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, bool) {
	for f := Format(0); f < formatCount; f++ {
		if formatInfoTable[f].Name == name {
			return f, true
		}
	}
	return 0, false
}

// FormatForDepth returns the format stored with bpp bits per pixel.
// For 8 bits, gray selects FormatGray8 instead of FormatRGB332.
func FormatForDepth(bpp uint8, gray bool) (Format, bool) {
	switch bpp {
	case 8:
		if gray {
			return FormatGray8, true
		}
		return FormatRGB332, true
	case 32:
		return FormatRGB888, true
	default:
		return 0, false
	}
}
