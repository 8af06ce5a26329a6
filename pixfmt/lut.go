package pixfmt

// LUT translates 8-bit samples of one format into native samples of
// another. It turns per-pixel conversion of RGB332, Gray8 and
// grayscale-ramp sources into a single array lookup.
type LUT [256]uint32

// NewLUT builds the table converting samples of src (an 8-bit format)
// to samples of dst.
func NewLUT(src, dst Format) *LUT {
	var t LUT
	for i := range t {
		t[i] = dst.Encode(src.Decode(uint32(i)))
	}
	return &t
}

// NewRampLUT builds the table mapping Gray8 intensities through ramp to
// samples of dst. The default ramp into FormatGray8 is the identity.
func NewRampLUT(ramp GrayRamp, dst Format) *LUT {
	var t LUT
	for i := range t {
		if dst == FormatGray8 && ramp == DefaultGrayRamp {
			t[i] = uint32(i)
			continue
		}
		t[i] = dst.Encode(ramp.Map(Gray8(i)))
	}
	return &t
}
