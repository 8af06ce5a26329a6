package panel

import (
	"errors"
	"testing"

	"github.com/gogpu/panel/pixfmt"
)

func TestSpritePushGreenSquare(t *testing.T) {
	d, fb := newTestDevice(t, 20, 20, pixfmt.FormatRGB888)
	d.ClearRGB888(pixfmt.Black)

	s, err := NewSprite(d, 10, 10)
	if err != nil {
		t.Fatalf("NewSprite() = %v", err)
	}
	defer s.Close()

	s.ClearRGB888(pixfmt.Green)
	s.Push(5, 5)

	for y := int32(0); y < 20; y++ {
		for x := int32(0); x < 20; x++ {
			want := uint32(pixfmt.Black)
			if x >= 5 && x < 15 && y >= 5 && y < 15 {
				want = uint32(pixfmt.Green)
			}
			if got := fb.At(x, y); got != want {
				t.Fatalf("At(%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestNewSprite(t *testing.T) {
	heap := NewHeap(0)
	d, _ := newTestDevice(t, 32, 32, pixfmt.FormatRGB888, WithAllocator(heap))

	s, err := NewSprite(d, 8, 6)
	if err != nil {
		t.Fatalf("NewSprite() = %v", err)
	}
	if s.Width() != 8 || s.Height() != 6 {
		t.Errorf("size = %dx%d, want 8x6", s.Width(), s.Height())
	}
	if s.Format() != pixfmt.FormatRGB888 {
		t.Errorf("Format() = %v, want the parent's", s.Format())
	}
	if !s.Owned() {
		t.Error("Owned() = false")
	}
	if s.Parent() != Target(d) {
		t.Error("Parent() is not the device")
	}
	if got := heap.Stats().InUse; got != 8*6*4 {
		t.Errorf("InUse = %d, want %d", got, 8*6*4)
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	st := heap.Stats()
	if st.InUse != 0 {
		t.Errorf("InUse after Close = %d, want 0", st.InUse)
	}
	if st.Frees != 1 {
		t.Errorf("Frees = %d, want 1", st.Frees)
	}
}

func TestNewSpriteErrors(t *testing.T) {
	heap := NewHeap(100)
	d, _ := newTestDevice(t, 32, 32, pixfmt.FormatRGB332, WithAllocator(heap))

	tests := []struct {
		name string
		w, h int32
		want error
	}{
		{"zero width", 0, 5, ErrInvalidDimensions},
		{"negative height", 5, -1, ErrInvalidDimensions},
		{"over budget", 20, 20, ErrOutOfMemory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSprite(d, tt.w, tt.h)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if s != nil {
				t.Error("sprite returned on failure")
			}
			if got := heap.Stats().InUse; got != 0 {
				t.Errorf("InUse = %d after failure, want 0", got)
			}
		})
	}

	// The budget still serves a sprite that fits.
	s, err := NewSprite(d, 10, 10)
	if err != nil {
		t.Fatalf("NewSprite(10, 10) = %v", err)
	}
	s.Close()
}

func TestStaticSpriteStaysInBuffer(t *testing.T) {
	d, _ := newTestDevice(t, 32, 32, pixfmt.FormatRGB332)

	const w, h = 6, 4
	mem := make([]byte, w*h+16)
	for i := range mem {
		mem[i] = 0x55
	}

	s := NewStaticSprite(d, w, h, mem, 8)
	if s.Owned() {
		t.Error("static sprite reports Owned")
	}
	if s.Format() != pixfmt.FormatRGB332 {
		t.Errorf("Format() = %v, want RGB332", s.Format())
	}

	s.ClearRGB332(0xE0)
	s.FillRectRGB332(-10, -10, 100, 100, 0x1C)
	s.DrawLineRGB332(-5, 2, 50, 2, 0x03)
	s.DrawLineRGB332(3, -5, 3, 50, 0x03)
	s.SetCursor(0, 0)
	s.Write([]byte("hello, world"))
	s.PushImageRGB332(4, 2, 4, 4, make([]pixfmt.RGB332, 16))

	for i := w * h; i < len(mem); i++ {
		if mem[i] != 0x55 {
			t.Fatalf("guard byte %d = %#x, want 0x55", i, mem[i])
		}
	}

	s.ClearRGB332(0xE0)
	s.Close()
	for i := 0; i < w*h; i++ {
		if mem[i] != 0xE0 {
			t.Fatalf("byte %d = %#x after Close, want the drawn 0xE0", i, mem[i])
		}
	}

	// Drawing after Close is discarded.
	s.ClearRGB332(0x00)
	if mem[0] != 0xE0 {
		t.Error("closed sprite still draws into the caller buffer")
	}
}

func TestStaticSpriteDepth(t *testing.T) {
	tests := []struct {
		name   string
		parent pixfmt.Format
		bpp    uint8
		want   pixfmt.Format
	}{
		{"8 under rgb888", pixfmt.FormatRGB888, 8, pixfmt.FormatRGB332},
		{"8 under rgb332", pixfmt.FormatRGB332, 8, pixfmt.FormatRGB332},
		{"8 under gray", pixfmt.FormatGray8, 8, pixfmt.FormatGray8},
		{"32 under gray", pixfmt.FormatGray8, 32, pixfmt.FormatRGB888},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDevice(t, 4, 4, tt.parent)
			s := NewStaticSprite(d, 2, 2, make([]byte, 16), tt.bpp)
			if s.Format() != tt.want {
				t.Errorf("Format() = %v, want %v", s.Format(), tt.want)
			}
		})
	}
}

func TestStaticSpritePanics(t *testing.T) {
	tests := []struct {
		name string
		w, h int32
		buf  []byte
		bpp  uint8
	}{
		{"depth 16", 2, 2, make([]byte, 8), 16},
		{"depth 0", 2, 2, make([]byte, 8), 0},
		{"short buffer", 4, 4, make([]byte, 15), 8},
		{"zero size", 0, 4, make([]byte, 8), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDevice(t, 4, 4, pixfmt.FormatRGB332)
			defer func() {
				if recover() == nil {
					t.Error("NewStaticSprite did not panic")
				}
			}()
			NewStaticSprite(d, tt.w, tt.h, tt.buf, tt.bpp)
		})
	}
}

func TestSpriteRoundTrip(t *testing.T) {
	d, _ := newTestDevice(t, 16, 16, pixfmt.FormatRGB888)

	dst, err := NewSprite(d, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer dst.Close()
	src, err := NewSprite(dst, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	solid := make([]pixfmt.RGB888, 16)
	for i := range solid {
		solid[i] = 0x336699
	}
	src.PushImageRGB888(0, 0, 4, 4, solid)
	src.Push(0, 0)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := spriteAt(dst, x, y); got != 0x336699 {
				t.Fatalf("dst(%d,%d) = %#x, want 0x336699", x, y, got)
			}
		}
	}
}

func TestSpritePushConvertsAndClips(t *testing.T) {
	d, fb := newTestDevice(t, 4, 4, pixfmt.FormatRGB888)

	mem := make([]byte, 9)
	s := NewStaticSprite(d, 3, 3, mem, 8)
	s.ClearRGB332(0xE0)
	s.Push(2, -1)

	for y := int32(0); y < 4; y++ {
		for x := int32(0); x < 4; x++ {
			want := uint32(0)
			if x >= 2 && y < 2 {
				want = 0xFF0000
			}
			if got := fb.At(x, y); got != want {
				t.Errorf("At(%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestSpriteTransactionsAreSeparate(t *testing.T) {
	d, fb := newTestDevice(t, 8, 8, pixfmt.FormatGray8)
	s, err := NewSprite(d, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	s.StartWrite()
	d.ClearGray(10)
	if got := fb.Stats().Transfers; got != 1 {
		t.Errorf("device Transfers = %d, want 1; sprite bracket leaked", got)
	}
	s.EndWrite()

	d.StartWrite()
	s.ClearGray(20)
	s.Push(0, 0)
	s.Push(4, 4)
	d.EndWrite()
	if got := fb.Stats().Transfers; got != 2 {
		t.Errorf("device Transfers = %d, want 2", got)
	}
}

func TestClosedSpriteIsInert(t *testing.T) {
	d, fb := newTestDevice(t, 4, 4, pixfmt.FormatRGB332)
	s, err := NewSprite(d, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	s.ClearRGB332(0xFF)
	s.Close()

	if !s.Closed() {
		t.Error("Closed() = false")
	}
	s.ClearRGB332(0x11)
	s.DrawLineRGB332(0, 0, 1, 1, 0x11)
	s.Push(0, 0)
	if got := countPixels(fb, 0); got != 16 {
		t.Errorf("closed sprite reached the device: %d untouched pixels", got)
	}
}
