package panel

import (
	"fmt"

	"github.com/gogpu/panel/pixfmt"
)

// RefreshMode selects the e-paper waveform trade-off between image
// quality and update speed. Panels without modes ignore it.
type RefreshMode uint8

const (
	// RefreshQuality gives the cleanest image with a full flash.
	RefreshQuality RefreshMode = iota
	// RefreshText favours sharp black-on-white text.
	RefreshText
	// RefreshFast updates quickly with some ghosting.
	RefreshFast
	// RefreshFastest updates with the least latency, in two levels.
	RefreshFastest
)

var refreshModeNames = [...]string{"quality", "text", "fast", "fastest"}

// String returns the lowercase mode name.
func (m RefreshMode) String() string {
	if int(m) < len(refreshModeNames) {
		return refreshModeNames[m]
	}
	return fmt.Sprintf("RefreshMode(%d)", m)
}

// ParseRefreshMode parses a mode name as printed by String.
func ParseRefreshMode(s string) (RefreshMode, bool) {
	for i, n := range refreshModeNames {
		if n == s {
			return RefreshMode(i), true
		}
	}
	return 0, false
}

// Transport moves pixels to a physical panel.
//
// Rectangles passed to FillRect and WritePixels are already clipped to
// Size, and samples are already encoded in Format. WritePixels receives
// w*h samples in row-major order.
//
// BeginWrite and EndWrite bracket one transfer; a transport may defer all
// output until EndWrite.
type Transport interface {
	Init() error
	Size() (width, height int32)
	Format() pixfmt.Format
	SetRefreshMode(m RefreshMode) error

	BeginWrite()
	EndWrite()
	FillRect(x, y, w, h int32, px uint32)
	WritePixels(x, y, w, h int32, pix []uint32)
}
