package image

import (
	"encoding/binary"

	"github.com/gogpu/panel/pixfmt"
)

// owner decides what happens to a buffer's bytes on release. The two
// implementations are the two ownership modes; a Buf gets one at
// construction and never changes it.
type owner interface {
	release(data []byte)
}

// allocOwner returns bytes to the allocator that produced them.
type allocOwner struct {
	alloc Allocator
}

func (o allocOwner) release(data []byte) { o.alloc.Free(data) }

// callerOwner leaves caller memory alone.
type callerOwner struct{}

func (callerOwner) release([]byte) {}

// Buf is a width x height grid of native samples in one pixfmt.Format.
//
// Rows are packed with no padding. Every write method expects coordinates
// already clipped to the buffer; Buf never bounds-checks against the
// surface, only Go's slice checks apply.
type Buf struct {
	data   []byte
	width  int
	height int
	stride int
	format pixfmt.Format
	owner  owner
}

// NewBuf allocates an owned buffer from a. Release hands the bytes back
// to a exactly once.
func NewBuf(width, height int, format pixfmt.Format, a Allocator) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if a == nil {
		a = DefaultHeap
	}

	data, err := a.Alloc(format.BufferSize(width, height))
	if err != nil {
		return nil, err
	}

	return &Buf{
		data:   data,
		width:  width,
		height: height,
		stride: format.RowBytes(width),
		format: format,
		owner:  allocOwner{alloc: a},
	}, nil
}

// FromRaw wraps caller memory without copying. The caller guarantees data
// holds at least format.BufferSize(width, height) bytes; bytes beyond
// that size are never touched. Release drops the reference only.
func FromRaw(data []byte, width, height int, format pixfmt.Format) *Buf {
	if size := format.BufferSize(width, height); len(data) > size {
		data = data[:size:size]
	}
	return &Buf{
		data:   data,
		width:  width,
		height: height,
		stride: format.RowBytes(width),
		format: format,
		owner:  callerOwner{},
	}
}

// Width returns the buffer width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *Buf) Format() pixfmt.Format {
	return b.format
}

// Data returns the raw bytes. It is nil after Release.
func (b *Buf) Data() []byte {
	return b.data
}

// Owned reports whether the bytes were allocated by NewBuf.
func (b *Buf) Owned() bool {
	_, ok := b.owner.(allocOwner)
	return ok
}

// Released reports whether Release has been called.
func (b *Buf) Released() bool {
	return b.data == nil
}

// Release gives up the bytes according to the ownership mode. Calls after
// the first do nothing.
func (b *Buf) Release() {
	if b.data == nil {
		return
	}
	data := b.data
	b.data = nil
	b.owner.release(data)
}

// Fill writes px into the rectangle [x, x+w) x [y, y+h).
func (b *Buf) Fill(x, y, w, h int, px uint32) {
	if w <= 0 || h <= 0 {
		return
	}
	switch b.format.BytesPerPixel() {
	case 1:
		v := byte(px)
		for row := y; row < y+h; row++ {
			off := row*b.stride + x
			span := b.data[off : off+w]
			for i := range span {
				span[i] = v
			}
		}
	case 4:
		for row := y; row < y+h; row++ {
			off := row*b.stride + x*4
			span := b.data[off : off+w*4]
			for i := 0; i < len(span); i += 4 {
				binary.LittleEndian.PutUint32(span[i:], px)
			}
		}
	}
}

// Set writes one sample.
func (b *Buf) Set(x, y int, px uint32) {
	b.Fill(x, y, 1, 1, px)
}

// At returns the sample at (x, y).
func (b *Buf) At(x, y int) uint32 {
	switch b.format.BytesPerPixel() {
	case 1:
		return uint32(b.data[y*b.stride+x])
	default:
		return binary.LittleEndian.Uint32(b.data[y*b.stride+x*4:])
	}
}

// WriteRow stores len(row) samples starting at (x, y).
func (b *Buf) WriteRow(x, y int, row []uint32) {
	switch b.format.BytesPerPixel() {
	case 1:
		span := b.data[y*b.stride+x : y*b.stride+x+len(row)]
		for i, px := range row {
			span[i] = byte(px)
		}
	case 4:
		off := y*b.stride + x*4
		span := b.data[off : off+len(row)*4]
		for i, px := range row {
			binary.LittleEndian.PutUint32(span[i*4:], px)
		}
	}
}

// ReadRow loads len(dst) samples starting at (x, y) into dst.
func (b *Buf) ReadRow(x, y int, dst []uint32) {
	switch b.format.BytesPerPixel() {
	case 1:
		span := b.data[y*b.stride+x : y*b.stride+x+len(dst)]
		for i, v := range span {
			dst[i] = uint32(v)
		}
	case 4:
		off := y*b.stride + x*4
		span := b.data[off : off+len(dst)*4]
		for i := range dst {
			dst[i] = binary.LittleEndian.Uint32(span[i*4:])
		}
	}
}
