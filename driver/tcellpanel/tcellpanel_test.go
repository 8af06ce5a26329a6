// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tcellpanel

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/panel"
	"github.com/gogpu/panel/pixfmt"
)

func newSim(t *testing.T, w, h int32, mode panel.RefreshMode) (*Transport, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	tr := New(sim, w, h, pixfmt.FormatRGB888)
	if err := tr.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(tr.Close)
	if err := tr.SetRefreshMode(mode); err != nil {
		t.Fatalf("SetRefreshMode() = %v", err)
	}
	return tr, sim
}

func cellColors(t *testing.T, sim tcell.SimulationScreen, x, y int) (tcell.Color, tcell.Color) {
	t.Helper()
	r, _, style, _ := sim.GetContent(x, y)
	if r != upperHalf {
		t.Fatalf("cell (%d,%d) rune = %q, want %q", x, y, r, upperHalf)
	}
	fg, bg, _ := style.Decompose()
	return fg, bg
}

func TestInitSizeFromTerminal(t *testing.T) {
	tr, sim := newSim(t, 0, 0, panel.RefreshQuality)
	cols, rows := sim.Size()
	w, h := tr.Size()
	if int(w) != cols || int(h) != rows*2 {
		t.Errorf("Size() = %dx%d, want %dx%d", w, h, cols, rows*2)
	}
}

func TestHalfBlockCells(t *testing.T) {
	tr, sim := newSim(t, 4, 3, panel.RefreshQuality)

	red := pixfmt.Encode(pixfmt.FormatRGB888, pixfmt.Red)
	blue := pixfmt.Encode(pixfmt.FormatRGB888, pixfmt.Blue)

	tr.BeginWrite()
	tr.FillRect(0, 0, 4, 1, red)
	tr.FillRect(0, 1, 4, 2, blue)
	tr.EndWrite()

	tests := []struct {
		name   string
		x, y   int
		fg, bg tcell.Color
	}{
		{"top row", 0, 0, tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(0, 0, 255)},
		{"odd tail", 3, 1, tcell.NewRGBColor(0, 0, 255), tcell.ColorBlack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg, bg := cellColors(t, sim, tt.x, tt.y)
			if fg != tt.fg {
				t.Errorf("fg = %v, want %v", fg, tt.fg)
			}
			if bg != tt.bg {
				t.Errorf("bg = %v, want %v", bg, tt.bg)
			}
		})
	}
}

func TestFlushOnOutermostEndWrite(t *testing.T) {
	tr, sim := newSim(t, 2, 2, panel.RefreshFast)

	green := pixfmt.Encode(pixfmt.FormatRGB888, pixfmt.Green)
	tr.BeginWrite()
	tr.BeginWrite()
	tr.WritePixels(0, 0, 2, 1, []uint32{green, green})
	tr.EndWrite()

	if r, _, _, _ := sim.GetContent(0, 0); r == upperHalf {
		t.Fatal("inner EndWrite painted the screen")
	}

	tr.EndWrite()
	fg, _ := cellColors(t, sim, 1, 0)
	if want := tcell.NewRGBColor(0, 255, 0); fg != want {
		t.Errorf("fg = %v, want %v", fg, want)
	}

	// Unbalanced EndWrite is ignored.
	tr.EndWrite()
}

func TestFastModeRepaintsDirtyRows(t *testing.T) {
	tr, sim := newSim(t, 2, 4, panel.RefreshFast)

	white := pixfmt.Encode(pixfmt.FormatRGB888, pixfmt.White)
	tr.BeginWrite()
	tr.FillRect(0, 2, 2, 2, white)
	tr.EndWrite()

	if r, _, _, _ := sim.GetContent(0, 0); r == upperHalf {
		t.Error("clean cell row 0 was repainted")
	}
	fg, bg := cellColors(t, sim, 0, 1)
	if want := tcell.NewRGBColor(255, 255, 255); fg != want || bg != want {
		t.Errorf("cell (0,1) = %v/%v, want %v", fg, bg, want)
	}
}

func TestSetupWithTerminalTransport(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	tr := New(sim, 8, 8, pixfmt.FormatRGB332)
	t.Cleanup(tr.Close)

	d, err := panel.Setup(panel.WithTransport(tr))
	if err != nil {
		t.Fatalf("Setup() = %v", err)
	}
	d.ClearRGB332(pixfmt.NewRGB332(0xFF, 0, 0))

	fg, bg := cellColors(t, sim, 7, 3)
	if want := tcell.NewRGBColor(255, 0, 0); fg != want || bg != want {
		t.Errorf("cell = %v/%v, want %v", fg, bg, want)
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range panel.Drivers() {
		if name == "tcell" {
			return
		}
	}
	t.Fatalf("Drivers() = %v, want tcell listed", panel.Drivers())
}
