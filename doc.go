// Package panel provides a uniform drawing surface for raster displays,
// including e-paper panels, and for off-screen sprites composited onto them.
//
// # Overview
//
// Every drawing surface is a [Target]. There are two kinds:
//   - [Device]: the physical display, acquired once per process with [Setup].
//   - [Sprite]: an off-screen buffer created from any Target and pushed
//     back onto it with [Sprite.Push].
//
// A Target stores pixels in one of three formats (see package pixfmt):
// 8-bit RGB332, 8-bit grayscale, or 32-bit RGB888. Drawing methods come in
// one variant per color family. A color of the target's own family is stored
// as-is; any other color is converted through RGB888.
//
// # Quick Start
//
//	dev, err := panel.Setup(panel.WithDriver("framebuffer"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dev.StartWrite()
//	dev.ClearRGB332(pixfmt.RGB332(0xFF))
//	dev.SetFont(font.Font4)
//	dev.SetCursor(10, 10)
//	fmt.Fprintf(dev, "%4.1f C", 21.5)
//	dev.EndWrite()
//
// # Sprites and Ownership
//
// [NewSprite] allocates its pixels from the parent's allocator and returns
// them on [Sprite.Close]. [NewStaticSprite] draws into caller memory and
// never frees it.
//
// # Transactions
//
// Outside a StartWrite/EndWrite bracket each drawing call is its own
// transfer to the panel. Inside a bracket the whole batch is one transfer,
// which matters on e-paper where every refresh is slow.
//
// # Drivers
//
// A Device talks to hardware through a [Transport]. Transports are selected
// by name from a registry (see [RegisterDriver]) or passed directly with
// [WithTransport]. The built-in "framebuffer" driver keeps the panel in
// memory; driver/tcellpanel shows it in a terminal.
package panel
