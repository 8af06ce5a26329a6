package panel

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/panel/pixfmt"
)

func registerTestDriver(t *testing.T, name string, priority int, available bool, factory DriverFactory) {
	t.Helper()
	if factory == nil {
		factory = func(cfg DriverConfig) (Transport, error) {
			return NewFramebuffer(2, 2, pixfmt.FormatRGB332), nil
		}
	}
	RegisterDriver(name, priority, factory, func() bool { return available })
	t.Cleanup(func() { UnregisterDriver(name) })
}

func TestDriversOrdering(t *testing.T) {
	registerTestDriver(t, "test-high", 200, true, nil)
	registerTestDriver(t, "test-low", 5, true, nil)
	registerTestDriver(t, "test-off", 300, false, nil)

	got := Drivers()
	want := []string{"test-off", "test-high", "framebuffer", "test-low"}
	if !reflect.DeepEqual(filterKnown(got, want), want) {
		t.Errorf("Drivers() = %v, want order %v", got, want)
	}

	avail := AvailableDrivers()
	wantAvail := []string{"test-high", "framebuffer", "test-low"}
	if !reflect.DeepEqual(filterKnown(avail, want), wantAvail) {
		t.Errorf("AvailableDrivers() = %v, want order %v", avail, wantAvail)
	}
}

// filterKnown keeps the names in known, preserving order, so drivers
// registered by other packages do not disturb the comparison.
func filterKnown(names, known []string) []string {
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[k] = true
	}
	var out []string
	for _, n := range names {
		if set[n] {
			out = append(out, n)
		}
	}
	return out
}

func TestLookupDriver(t *testing.T) {
	e, ok := LookupDriver("framebuffer")
	if !ok {
		t.Fatal("framebuffer driver not registered")
	}
	if e.Priority != 10 || !e.Available() {
		t.Errorf("framebuffer entry = %+v", e)
	}
	if _, ok := LookupDriver("missing"); ok {
		t.Error("LookupDriver(missing) = ok")
	}
}

func TestOpenDriverSelection(t *testing.T) {
	var gotCfg DriverConfig
	registerTestDriver(t, "test-best", 1000, true, func(cfg DriverConfig) (Transport, error) {
		gotCfg = cfg
		return NewFramebuffer(cfg.Width, cfg.Height, pixfmt.FormatGray8), nil
	})
	registerTestDriver(t, "test-broken", 2000, true, func(DriverConfig) (Transport, error) {
		return nil, errors.New("bus error")
	})

	tr, name, err := openDriver("", DriverConfig{Width: 3, Height: 5})
	if err != nil {
		t.Fatalf("openDriver() = %v", err)
	}
	if name != "test-best" {
		t.Errorf("selected %q, want test-best after test-broken failed", name)
	}
	if w, h := tr.Size(); w != 3 || h != 5 || gotCfg.Width != 3 {
		t.Errorf("transport size = %dx%d, config %+v", w, h, gotCfg)
	}
}

func TestOpenDriverErrors(t *testing.T) {
	registerTestDriver(t, "test-off", 1, false, nil)

	_, _, err := openDriver("test-off", DriverConfig{})
	var ue *DriverUnavailableError
	if !errors.As(err, &ue) || ue.Name != "test-off" {
		t.Errorf("err = %v, want DriverUnavailableError", err)
	}
	if ue != nil && ue.Error() != "panel: driver unavailable: test-off" {
		t.Errorf("Error() = %q", ue.Error())
	}

	_, _, err = openDriver("test-missing", DriverConfig{})
	var nf *DriverNotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("err = %v, want DriverNotFoundError", err)
	}
}

func TestNoDriverAvailable(t *testing.T) {
	saved := drivers.entries
	drivers.mu.Lock()
	drivers.entries = map[string]*DriverEntry{}
	drivers.mu.Unlock()
	t.Cleanup(func() {
		drivers.mu.Lock()
		drivers.entries = saved
		drivers.mu.Unlock()
	})

	if _, _, err := openDriver("", DriverConfig{}); !errors.Is(err, ErrNoDriverAvailable) {
		t.Errorf("err = %v, want ErrNoDriverAvailable", err)
	}
	if Drivers() != nil {
		t.Error("Drivers() on an empty registry should be nil")
	}
}

func TestFramebufferDriverDefaults(t *testing.T) {
	tr, _, err := openDriver("framebuffer", DriverConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if w, h := tr.Size(); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
	if tr.Format() != pixfmt.FormatRGB888 {
		t.Errorf("Format() = %v, want rgb888", tr.Format())
	}
}
