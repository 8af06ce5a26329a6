package panel

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	// Formats accepted by DrawImage.
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/panel/pixfmt"
)

// ImageFilter selects the resampling used when an image is scaled.
type ImageFilter uint8

const (
	// FilterNearest repeats or drops source pixels. It keeps hard edges,
	// which suits 1-bit and palette art on e-paper.
	FilterNearest ImageFilter = iota
	// FilterBilinear blends neighbouring pixels.
	FilterBilinear
)

// alphaCutoff is the alpha at which an image pixel is drawn; panels have
// no blending, so pixels are either drawn or skipped.
const alphaCutoff = 0x80

// DrawImageOptions places an image on a target. A nil *DrawImageOptions
// draws at (0, 0) with scale 1.
type DrawImageOptions struct {
	// X and Y locate the top-left of the placement box.
	X, Y int32

	// MaxWidth and MaxHeight bound the placement box. Zero or negative
	// extends the box to the target edge.
	MaxWidth, MaxHeight int32

	// OffsetX and OffsetY skip that many scaled pixels of the image's
	// top-left.
	OffsetX, OffsetY int32

	// ScaleX and ScaleY scale the image. ScaleY 0 means ScaleX. A zero
	// or negative ScaleX is an error.
	ScaleX, ScaleY float32

	// Anchor aligns the scaled image inside the placement box.
	Anchor Anchor

	// Filter is the resampling used when scaling.
	Filter ImageFilter
}

// DrawPNG decodes a PNG image and draws it. A decode failure draws
// nothing; anything drawn before another failure stays drawn.
func (s *surface) DrawPNG(data []byte, opts *DrawImageOptions) error {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		Logger().Debug("panel: png decode failed", "err", err)
		return fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	return s.drawImage(img, opts)
}

// DrawImage is DrawPNG for any registered image format: PNG, JPEG, BMP
// and WebP.
func (s *surface) DrawImage(data []byte, opts *DrawImageOptions) error {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		Logger().Debug("panel: image decode failed", "err", err)
		return fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	Logger().Debug("panel: image decoded", "format", format, "size", img.Bounds().Size())
	return s.drawImage(img, opts)
}

// maxImageExtent bounds a scaled image side. Beyond it the placement
// arithmetic is no longer exact in float64.
const maxImageExtent = 1 << 52

func (s *surface) drawImage(src image.Image, opts *DrawImageOptions) error {
	o := DrawImageOptions{ScaleX: 1}
	if opts != nil {
		o = *opts
	}
	if o.ScaleY == 0 {
		o.ScaleY = o.ScaleX
	}
	if !(o.ScaleX > 0) || !(o.ScaleY > 0) {
		return ErrInvalidScale
	}

	b := src.Bounds()
	fw := math.Round(float64(b.Dx()) * float64(o.ScaleX))
	fh := math.Round(float64(b.Dy()) * float64(o.ScaleY))
	if !(fw < maxImageExtent) || !(fh < maxImageExtent) {
		return ErrInvalidScale
	}
	sw, sh := int64(fw), int64(fh)
	if sw <= 0 || sh <= 0 {
		return nil
	}

	bx, by := int64(o.X), int64(o.Y)
	boxW, boxH := int64(o.MaxWidth), int64(o.MaxHeight)
	if boxW <= 0 {
		boxW = int64(s.width) - bx
	}
	if boxH <= 0 {
		boxH = int64(s.height) - by
	}

	// Align in the box, bottom and baseline alike, then shift by the
	// offset. Only the part inside the box is drawn.
	ax, ay := bx, by
	switch {
	case o.Anchor&anchorRight != 0:
		ax += boxW - sw
	case o.Anchor&anchorCenter != 0:
		ax += (boxW - sw) / 2
	}
	switch {
	case o.Anchor&(anchorBottom|anchorBaseline) != 0:
		ay += boxH - sh
	case o.Anchor&anchorMiddle != 0:
		ay += (boxH - sh) / 2
	}
	dx, dy := ax-int64(o.OffsetX), ay-int64(o.OffsetY)

	x0 := max(dx, bx, 0)
	y0 := max(dy, by, 0)
	x1 := min(dx+sw, bx+boxW, int64(s.width))
	y1 := min(dy+sh, by+boxH, int64(s.height))
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	cx, cy := int32(x0), int32(y0)
	cw, ch := int32(x1-x0), int32(y1-y0)

	// Resample only the visible window; (vx, vy) is its position in the
	// scaled image.
	vx, vy := x0-dx, y0-dy
	img := image.NewNRGBA(image.Rect(0, 0, int(cw), int(ch)))
	if sw == int64(b.Dx()) && sh == int64(b.Dy()) {
		sp := b.Min.Add(image.Pt(int(vx), int(vy)))
		xdraw.Draw(img, img.Bounds(), src, sp, xdraw.Src)
	} else {
		var interp xdraw.Interpolator = xdraw.NearestNeighbor
		if o.Filter == FilterBilinear {
			interp = xdraw.ApproxBiLinear
		}
		kx := float64(sw) / float64(b.Dx())
		ky := float64(sh) / float64(b.Dy())
		s2d := f64.Aff3{
			kx, 0, -float64(vx) - float64(b.Min.X)*kx,
			0, ky, -float64(vy) - float64(b.Min.Y)*ky,
		}
		interp.Transform(img, s2d, src, b, xdraw.Src, nil)
	}

	s.begin()
	defer s.end()

	row := make([]uint32, cw)
	for y := int32(0); y < ch; y++ {
		line := img.Pix[int(y)*img.Stride:]
		start := int32(-1)
		for x := int32(0); x <= cw; x++ {
			visible := false
			if x < cw {
				p := line[int(x)*4:]
				if p[3] >= alphaCutoff {
					visible = true
					row[x] = s.format.Encode(pixfmt.NewRGB888(p[0], p[1], p[2]))
				}
			}
			switch {
			case visible && start < 0:
				start = x
			case !visible && start >= 0:
				s.cv.writePixels(cx+start, cy+y, x-start, 1, row[start:x])
				start = -1
			}
		}
	}
	return nil
}
