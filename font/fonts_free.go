//go:build panel_freefonts

package font

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// freeDPI turns the point sizes in the FreeFont names into pixels the
// way the Adafruit converter does for the stock panels.
const freeDPI = 96

var freeSizes = [4]float64{9, 12, 18, 24}

// The FreeFont families are stood in for by the Go fonts of the same
// style. The serif family has no counterpart and stays unwired.
func init() {
	families := []struct {
		first ID
		ttf   []byte
	}{
		{FreeMono9pt7b, gomono.TTF},
		{FreeMonoBold9pt7b, gomonobold.TTF},
		{FreeMonoOblique9pt7b, gomonoitalic.TTF},
		{FreeMonoBoldOblique9pt7b, gomonobolditalic.TTF},
		{FreeSans9pt7b, goregular.TTF},
		{FreeSansBold9pt7b, gobold.TTF},
		{FreeSansOblique9pt7b, goitalic.TTF},
		{FreeSansBoldOblique9pt7b, gobolditalic.TTF},
	}
	for _, fam := range families {
		for i, size := range freeSizes {
			register(fam.first+ID(i), ttfDPI(fam.ttf, size, freeDPI))
		}
	}
}
