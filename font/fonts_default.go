package font

import (
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/inconsolata"
)

// The numbered LovyanGFX fonts, matched by cell height.
func init() {
	register(Font0, fixedFace(basicfont.Face7x13))
	register(Font2, fixedFace(inconsolata.Regular8x16))
	register(Font4, ttf(goregular.TTF, 26))
	register(Font6, ttf(gomono.TTF, 48))
	register(Font7, ttf(gomonobold.TTF, 48))
	register(Font8, ttf(goregular.TTF, 75))
}
