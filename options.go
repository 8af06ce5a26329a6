package panel

import (
	"github.com/gogpu/panel/internal/image"
	"github.com/gogpu/panel/pixfmt"
)

// Option configures Setup.
//
// Example:
//
//	dev, err := panel.Setup(
//	    panel.WithDriver("framebuffer"),
//	    panel.WithSize(960, 540),
//	    panel.WithFormat(pixfmt.FormatGray8),
//	)
type Option func(*options)

type options struct {
	transport Transport
	driver    string
	width     int32
	height    int32
	format    pixfmt.Format
	hasFormat bool
	mode      RefreshMode
	alloc     image.Allocator
}

func defaultOptions() options {
	return options{
		mode:  RefreshQuality,
		alloc: image.DefaultHeap,
	}
}

// WithTransport binds the device to t instead of a registered driver.
// Size and format then come from t.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithDriver selects a registered driver by name. Without it Setup takes
// the best available driver.
func WithDriver(name string) Option {
	return func(o *options) {
		o.driver = name
	}
}

// WithSize requests a panel size from the driver. Drivers bound to fixed
// hardware ignore it.
func WithSize(width, height int32) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithFormat requests a pixel format from the driver.
func WithFormat(f pixfmt.Format) Option {
	return func(o *options) {
		o.format = f
		o.hasFormat = true
	}
}

// WithRefreshMode sets the e-paper refresh mode. The default is
// RefreshQuality.
func WithRefreshMode(m RefreshMode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithAllocator sets the allocator that owned sprite buffers come from.
// Use NewHeap to put a budget on sprite memory.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}
