// Command paneldemo draws a sensor dashboard on a panel.
//
// By default it renders into an in-memory framebuffer and saves the
// result as a PNG. With -driver tcell it previews in the terminal.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gogpu/panel"
	_ "github.com/gogpu/panel/driver/tcellpanel"
	"github.com/gogpu/panel/font"
	"github.com/gogpu/panel/pixfmt"
	"github.com/gogpu/panel/widget/chart"
)

const (
	ink   = pixfmt.RGB332(0x00)
	paper = pixfmt.RGB332(0xFF)
)

func main() {
	var (
		driver  = flag.String("driver", "framebuffer", "panel driver, empty for the best available")
		width   = flag.Int("width", panel.DefaultWidth, "panel width")
		height  = flag.Int("height", panel.DefaultHeight, "panel height")
		format  = flag.String("format", "rgb332", "pixel format: rgb332, gray8 or rgb888")
		refresh = flag.String("refresh", "quality", "refresh mode: quality, text, fast or fastest")
		samples = flag.Int("samples", 144, "samples per chart")
		output  = flag.String("output", "dashboard.png", "output file for framebuffer drivers")
		hold    = flag.Duration("hold", 5*time.Second, "how long a terminal preview stays up")
		verbose = flag.Bool("v", false, "log panel diagnostics")
	)
	flag.Parse()

	if *verbose {
		panel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f, ok := pixfmt.ParseFormat(*format)
	if !ok {
		log.Fatalf("unknown format %q", *format)
	}
	mode, ok := panel.ParseRefreshMode(*refresh)
	if !ok {
		log.Fatalf("unknown refresh mode %q", *refresh)
	}

	d, err := panel.Setup(
		panel.WithDriver(*driver),
		panel.WithSize(int32(*width), int32(*height)),
		panel.WithFormat(f),
		panel.WithRefreshMode(mode),
	)
	if err != nil {
		log.Fatalf("Failed to set up panel: %v", err)
	}

	if err := drawDashboard(d, *samples); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	switch t := d.Transport().(type) {
	case *panel.Framebuffer:
		if err := savePNG(*output, t.Snapshot()); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Dashboard saved to %s (%dx%d)\n", *output, d.Width(), d.Height())
	case interface{ Close() }:
		time.Sleep(*hold)
		t.Close()
	}
}

// series is one synthetic sensor channel.
type series struct {
	label  string
	unit   string
	values []float32
}

func sensorData(n int) []series {
	temp := make([]float32, n)
	hum := make([]float32, n)
	power := make([]float32, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		temp[i] = float32(22 + 4*math.Sin(2*math.Pi*t))
		hum[i] = float32(55 + 10*math.Cos(2*math.Pi*t))
		power[i] = float32(300 + 250*math.Abs(math.Sin(6*math.Pi*t)))
	}
	// A dropped reading shows up as a break in the chart.
	if n > 10 {
		hum[n/3] = float32(math.NaN())
	}
	return []series{
		{"Temperature:", "C", temp},
		{"Humidity:", "%", hum},
		{"Power:", "W", power},
	}
}

func drawDashboard(d *panel.Device, samples int) error {
	if err := d.SetFont(font.FreeMono24pt7b); err != nil {
		if err := d.SetFont(font.Font4); err != nil {
			return err
		}
	}
	fontHeight := d.FontHeight()
	lineHeight := fontHeight * 9 / 8
	screenWidth, screenHeight := d.Width(), d.Height()
	chartLeft := screenWidth * 5 / 16
	chartWidth := screenWidth - chartLeft
	chartHeight := (screenHeight - lineHeight) / 3
	const valueLeft = 20

	d.ClearRGB332(paper)

	// Top bar.
	d.StartWrite()
	d.FillRectRGB332(0, 0, screenWidth, fontHeight, ink)
	stamp := time.Now().Format("2006-01-02 15:04")
	d.DrawStringRGB332(stamp, 0, 0, paper, ink, 0.75, 0.75, panel.TopLeft)
	d.DrawStringRGB332("WIFI: OK", screenWidth-1, 0, paper, ink, 0.75, 0.75, panel.TopRight)
	d.EndWrite()

	for i, s := range sensorData(samples) {
		top := fontHeight + chartHeight*int32(i)
		values := chart.Slice(s.values)
		lo, hi, ok := chart.Range(len(s.values), values)
		if !ok {
			continue
		}
		chart.New(chartWidth, chartHeight, ink, paper).
			Draw(d, chartLeft, top, len(s.values), lo, hi, values)

		y := top
		d.DrawStringRGB332(s.label, 0, y, ink, paper, 0.75, 0.75, panel.TopLeft)
		y += lineHeight
		cur := s.values[len(s.values)-1]
		d.DrawStringRGB332(fmt.Sprintf("%.1f%s", cur, s.unit), valueLeft, y, ink, paper, 1, 1, panel.TopLeft)
		y += lineHeight
		d.DrawStringRGB332(fmt.Sprintf("max %.1f", hi), valueLeft, y, ink, paper, 0.75, 0.75, panel.TopLeft)
		y += lineHeight * 3 / 4
		d.DrawStringRGB332(fmt.Sprintf("min %.1f", lo), valueLeft, y, ink, paper, 0.75, 0.75, panel.TopLeft)
	}

	if err := drawBadge(d); err != nil {
		return err
	}
	return drawIcon(d, fontHeight)
}

// drawBadge composes a label off screen and pushes it in one go.
func drawBadge(d *panel.Device) error {
	s, err := panel.NewSprite(d, 96, 24)
	if err != nil {
		return err
	}
	defer s.Close()

	s.ClearRGB332(ink)
	if err := s.SetFont(font.Font2); err != nil {
		return err
	}
	s.DrawStringRGB332("panel demo", 48, 12, paper, ink, 1, 1, panel.MiddleCenter)
	s.Push(4, d.Height()-28)
	return nil
}

// drawIcon encodes a small gauge at run time and draws it through the
// PNG decoder, centered in the top bar.
func drawIcon(d *panel.Device, barHeight int32) error {
	const size = 32
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx, dy := float64(px)-size/2+0.5, float64(py)-size/2+0.5
			if r := math.Hypot(dx, dy); r < size/2 && r > size/2-4 {
				img.SetNRGBA(px, py, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return d.DrawPNG(buf.Bytes(), &panel.DrawImageOptions{
		MaxWidth:  d.Width(),
		MaxHeight: barHeight,
		ScaleX:    float32(barHeight) / size,
		Anchor:    panel.MiddleCenter,
		Filter:    panel.FilterBilinear,
	})
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
