// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tcellpanel previews a panel in a terminal.
//
// Every terminal cell shows two vertically stacked pixels using the upper
// half block: the foreground is the top pixel and the background the
// bottom one. Colors go out as 24-bit RGB; tcell downgrades them on
// terminals without true color.
//
// Importing the package registers the "tcell" driver:
//
//	import _ "github.com/gogpu/panel/driver/tcellpanel"
//
//	d, err := panel.Setup(panel.WithDriver("tcell"))
package tcellpanel

import (
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/gogpu/panel"
	"github.com/gogpu/panel/pixfmt"
)

// upperHalf is drawn in every cell.
const upperHalf = '▀'

// Transport is a panel.Transport backed by a tcell screen.
//
// Pixels are kept in memory and reach the screen when the outermost
// EndWrite completes. In RefreshQuality mode the whole screen is
// repainted; in faster modes only the cell rows touched since the last
// transfer are.
type Transport struct {
	mu     sync.Mutex
	screen tcell.Screen
	width  int32
	height int32
	format pixfmt.Format
	pix    []uint32
	dirty  []bool // per cell row
	mode   panel.RefreshMode
	depth  int
	inited bool

	logger atomic.Pointer[slog.Logger]
}

var _ panel.Transport = (*Transport)(nil)

// New wraps screen. A non-positive width or height is taken from the
// terminal size at Init, two pixels per cell vertically. The screen is
// initialized by Init, not by New.
func New(screen tcell.Screen, width, height int32, format pixfmt.Format) *Transport {
	t := &Transport{
		screen: screen,
		width:  width,
		height: height,
		format: format,
	}
	t.logger.Store(panel.Logger())
	return t
}

// SetLogger implements the logger hook panel.SetLogger looks for.
func (t *Transport) SetLogger(l *slog.Logger) {
	if l == nil {
		l = panel.Logger()
	}
	t.logger.Store(l)
}

// Init initializes the terminal and clears it.
func (t *Transport) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.inited {
		if err := t.screen.Init(); err != nil {
			return err
		}
		t.inited = true
	}
	if t.width <= 0 || t.height <= 0 {
		cols, rows := t.screen.Size()
		t.width, t.height = int32(cols), int32(rows*2)
	}
	if t.width <= 0 || t.height <= 0 {
		return panel.ErrInvalidDimensions
	}

	t.pix = make([]uint32, int(t.width)*int(t.height))
	t.dirty = make([]bool, (t.height+1)/2)
	t.screen.HideCursor()
	t.screen.Clear()
	t.logger.Load().Debug("tcellpanel: init",
		"width", t.width, "height", t.height, "format", t.format.String())
	return nil
}

// Close restores the terminal.
func (t *Transport) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inited {
		t.screen.Fini()
		t.inited = false
	}
}

// Size implements panel.Transport.
func (t *Transport) Size() (width, height int32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// Format implements panel.Transport.
func (t *Transport) Format() pixfmt.Format {
	return t.format
}

// SetRefreshMode implements panel.Transport.
func (t *Transport) SetRefreshMode(m panel.RefreshMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mode = m
	return nil
}

// BeginWrite implements panel.Transport.
func (t *Transport) BeginWrite() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.depth++
}

// EndWrite implements panel.Transport.
func (t *Transport) EndWrite() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.depth == 0 {
		return
	}
	t.depth--
	if t.depth == 0 {
		t.flush()
	}
}

// FillRect implements panel.Transport.
func (t *Transport) FillRect(x, y, w, h int32, px uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for row := y; row < y+h; row++ {
		span := t.pix[int(row)*int(t.width)+int(x):][:w]
		for i := range span {
			span[i] = px
		}
	}
	t.touch(y, h)
}

// WritePixels implements panel.Transport.
func (t *Transport) WritePixels(x, y, w, h int32, pix []uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for row := int32(0); row < h; row++ {
		copy(t.pix[int(y+row)*int(t.width)+int(x):][:w], pix[int(row)*int(w):])
	}
	t.touch(y, h)
}

func (t *Transport) touch(y, h int32) {
	for r := y / 2; r <= (y+h-1)/2; r++ {
		t.dirty[r] = true
	}
}

func (t *Transport) color(px uint32) tcell.Color {
	c := t.format.Decode(px)
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

func (t *Transport) flush() {
	full := t.mode == panel.RefreshQuality
	rows := 0
	for r := range t.dirty {
		if !full && !t.dirty[r] {
			continue
		}
		t.dirty[r] = false
		rows++

		top := int32(r) * 2
		for x := int32(0); x < t.width; x++ {
			fg := t.color(t.pix[int(top)*int(t.width)+int(x)])
			bg := tcell.ColorBlack
			if top+1 < t.height {
				bg = t.color(t.pix[int(top+1)*int(t.width)+int(x)])
			}
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			t.screen.SetContent(int(x), r, upperHalf, nil, style)
		}
	}
	if rows == 0 {
		return
	}

	if full {
		t.screen.Sync()
	} else {
		t.screen.Show()
	}
	t.logger.Load().Debug("tcellpanel: flush", "rows", rows, "full", full)
}

// available reports whether stdout is a terminal.
func available() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func open(cfg panel.DriverConfig) (panel.Transport, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	format := pixfmt.FormatRGB888
	if cfg.HasFormat {
		format = cfg.Format
	}
	return New(screen, cfg.Width, cfg.Height, format), nil
}

func init() {
	panel.RegisterDriver("tcell", 50, open, available)
}
