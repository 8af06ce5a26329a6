package panel

import (
	"fmt"
	"sync"
)

var (
	setupMu sync.Mutex
	device  *Device
)

// Device is the physical display. There is at most one per process.
type Device struct {
	*surface

	transport Transport
	driver    string
	mode      RefreshMode
}

// Setup acquires the display. The first successful call returns the
// Device; every later call returns ErrAlreadySetup. A failed call leaves
// the device unacquired so Setup can be retried.
//
// Setup is safe for concurrent use.
func Setup(opts ...Option) (*Device, error) {
	setupMu.Lock()
	defer setupMu.Unlock()

	if device != nil {
		return nil, ErrAlreadySetup
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t, name := o.transport, "custom"
	if t == nil {
		var err error
		t, name, err = openDriver(o.driver, DriverConfig{
			Width:     o.width,
			Height:    o.height,
			Format:    o.format,
			HasFormat: o.hasFormat,
		})
		if err != nil {
			return nil, err
		}
	}

	propagateLogger(t, Logger())
	if err := t.Init(); err != nil {
		return nil, fmt.Errorf("panel: init %s transport: %w", name, err)
	}
	if err := t.SetRefreshMode(o.mode); err != nil {
		return nil, fmt.Errorf("panel: set refresh mode: %w", err)
	}
	w, h := t.Size()
	format := t.Format()
	if !format.IsValid() {
		return nil, fmt.Errorf("panel: %s transport format %d: %w", name, uint8(format), ErrInvalidFormat)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("panel: %s transport size %dx%d: %w", name, w, h, ErrInvalidDimensions)
	}
	d := &Device{
		surface:   newSurface(transportCanvas{t: t}, w, h, format, o.alloc),
		transport: t,
		driver:    name,
		mode:      o.mode,
	}
	device = d

	Logger().Info("panel: device ready",
		"driver", name, "width", w, "height", h,
		"format", format.String(), "refresh", o.mode.String())
	return d, nil
}

// Transport returns the transport the device draws through.
func (d *Device) Transport() Transport {
	return d.transport
}

// Driver returns the name of the driver that opened the transport, or
// "custom" for WithTransport.
func (d *Device) Driver() string {
	return d.driver
}

// RefreshMode returns the refresh mode chosen at setup.
func (d *Device) RefreshMode() RefreshMode {
	return d.mode
}
