// Package font maps font identifiers to glyph tables.
//
// The identifier space is the closed LovyanGFX set (see ID). Each build
// wires a subset of it to real faces from golang.org/x/image; the rest
// resolve to a miss. The default build carries Font0 through Font8. The
// build tags panel_asciifonts and panel_freefonts add more entries.
//
// Glyphs are rasterised once per rune into 1-bit masks, stored as
// horizontal runs so a panel can draw them with rectangle fills.
package font

import (
	"image"
	"sync"

	"github.com/mattn/go-runewidth"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/panel/internal/cache"
)

// glyphCacheSize bounds the glyphs kept per font.
const glyphCacheSize = 512

// alphaThreshold is the coverage at which a mask pixel counts as ink.
const alphaThreshold = 0x8000

// Run is a horizontal span of ink, relative to the top-left of the
// character cell.
type Run struct {
	X, Y, Len int32
}

// Glyph is the rasterised form of one rune.
type Glyph struct {
	// Runs cover the inked pixels, ordered by row then column.
	Runs []Run

	// Advance is the horizontal distance to the next cell, in pixels.
	Advance int32

	// Missing is set when the face has no glyph for the rune.
	Missing bool
}

// Inked reports whether pixel (x, y) of the cell is covered.
func (g *Glyph) Inked(x, y int32) bool {
	for _, r := range g.Runs {
		if r.Y == y && x >= r.X && x < r.X+r.Len {
			return true
		}
	}
	return false
}

// Font is an immutable, process-wide glyph table.
//
// Its face is loaded on first use. A Font is safe for concurrent use.
type Font struct {
	id   ID
	load func() (xfont.Face, error)

	once    sync.Once
	face    xfont.Face
	ascent  int32
	height  int32
	halfAdv int32

	glyphs *cache.Cache[rune, *Glyph]
}

func newFont(id ID, load func() (xfont.Face, error)) *Font {
	return &Font{
		id:     id,
		load:   load,
		glyphs: cache.New[rune, *Glyph](glyphCacheSize),
	}
}

// ID returns the identifier the font is registered under.
func (f *Font) ID() ID {
	return f.id
}

// Name returns the LovyanGFX name of the font.
func (f *Font) Name() string {
	return f.id.String()
}

// Height returns the line height in pixels.
func (f *Font) Height() int32 {
	f.init()
	return f.height
}

// Ascent returns the distance from the top of the cell to the baseline.
func (f *Font) Ascent() int32 {
	f.init()
	return f.ascent
}

// Glyph returns the rasterised glyph for r.
func (f *Font) Glyph(r rune) *Glyph {
	f.init()
	return f.glyphs.GetOrCreate(r, func() *Glyph {
		return f.rasterize(r)
	})
}

// Advance returns the advance of r in pixels.
func (f *Font) Advance(r rune) int32 {
	return f.Glyph(r).Advance
}

// MeasureString returns the sum of the advances of the runes in s.
func (f *Font) MeasureString(s string) int32 {
	var w int32
	for _, r := range s {
		w += f.Advance(r)
	}
	return w
}

// CacheStats reports the glyph cache counters.
func (f *Font) CacheStats() cache.Stats {
	return f.glyphs.Stats()
}

func (f *Font) init() {
	f.once.Do(func() {
		face, err := f.load()
		if err != nil {
			slogger().Warn("font: face load failed, using fallback",
				"font", f.id.String(), "err", err)
			face = basicfont.Face7x13
		}
		f.face = face

		m := face.Metrics()
		f.ascent = int32(m.Ascent.Ceil())
		f.height = int32(m.Height.Ceil())
		if d := int32(m.Descent.Ceil()); f.ascent+d > f.height {
			f.height = f.ascent + d
		}

		if adv, ok := face.GlyphAdvance(' '); ok {
			f.halfAdv = int32(adv.Round())
		} else {
			f.halfAdv = f.height / 2
		}
	})
}

// rasterize runs under the glyph cache lock, which also serialises use
// of the face.
func (f *Font) rasterize(r rune) *Glyph {
	dot := fixed.P(0, int(f.ascent))
	dr, mask, maskp, adv, ok := f.face.Glyph(dot, r)
	if !ok {
		slogger().Debug("font: glyph missing", "font", f.id.String(), "rune", r)
		return &Glyph{
			Advance: int32(runewidth.RuneWidth(r)) * f.halfAdv,
			Missing: true,
		}
	}

	g := &Glyph{Advance: int32(adv.Round())}
	if mask == nil {
		return g
	}
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		start := -1
		for x := dr.Min.X; x <= dr.Max.X; x++ {
			in := x < dr.Max.X && inked(mask, maskp, dr, x, y)
			switch {
			case in && start < 0:
				start = x
			case !in && start >= 0:
				g.Runs = append(g.Runs, Run{X: int32(start), Y: int32(y), Len: int32(x - start)})
				start = -1
			}
		}
	}
	return g
}

func inked(mask image.Image, maskp image.Point, dr image.Rectangle, x, y int) bool {
	_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
	return a >= alphaThreshold
}
