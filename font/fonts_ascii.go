//go:build panel_asciifonts

package font

import (
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/inconsolata"
)

func init() {
	register(AsciiFont8x16, fixedFace(inconsolata.Regular8x16))
	register(AsciiFont24x48, ttf(gomono.TTF, 40))
}
