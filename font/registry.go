package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// table holds the wired fonts, indexed by ID. It is filled by init
// functions and read-only afterwards.
var table [idCount]*Font

// register wires id to a face loader. Called from init only.
func register(id ID, load func() (xfont.Face, error)) {
	table[id] = newFont(id, load)
}

// Resolve returns the font wired to id in this build.
// Unknown identifiers and identifiers not compiled in report false.
func Resolve(id ID) (*Font, bool) {
	if id >= idCount {
		return nil, false
	}
	f := table[id]
	return f, f != nil
}

// Default returns Font0, which every build carries.
func Default() *Font {
	return table[Font0]
}

// Available lists the identifiers wired in this build, in ID order.
func Available() []ID {
	ids := make([]ID, 0, 16)
	for i, f := range table {
		if f != nil {
			ids = append(ids, ID(i))
		}
	}
	return ids
}

// ttf returns a loader for an OpenType face parsed from data at the given
// size in pixels.
func ttf(data []byte, size float64) func() (xfont.Face, error) {
	return ttfDPI(data, size, 72)
}

func ttfDPI(data []byte, size, dpi float64) func() (xfont.Face, error) {
	return func() (xfont.Face, error) {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("font: failed to parse font: %w", err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     dpi,
			Hinting: xfont.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font: failed to create face: %w", err)
		}
		return face, nil
	}
}

// fixedFace wraps a face that needs no loading.
func fixedFace(face xfont.Face) func() (xfont.Face, error) {
	return func() (xfont.Face, error) { return face, nil }
}
