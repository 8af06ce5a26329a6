package panel

import (
	"sort"
	"sync"

	"github.com/gogpu/panel/pixfmt"
)

// DriverConfig is what Setup asks of a driver. Zero fields mean the
// driver's own default.
type DriverConfig struct {
	Width  int32
	Height int32
	Format pixfmt.Format

	// HasFormat reports whether Format was requested.
	HasFormat bool
}

// DriverFactory opens a transport.
type DriverFactory func(cfg DriverConfig) (Transport, error)

// DriverEntry describes a registered driver.
type DriverEntry struct {
	// Name is the unique identifier for this driver.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: physical panels
	//   - 50: terminal and window previews
	//   - 10: in-memory framebuffers
	Priority int

	// Factory opens the transport.
	Factory DriverFactory

	// Available reports whether the driver can run on this system.
	Available func() bool
}

var drivers = struct {
	mu      sync.RWMutex
	entries map[string]*DriverEntry
}{entries: make(map[string]*DriverEntry)}

// RegisterDriver adds a driver to the registry, replacing any driver of
// the same name. A nil available means always available.
//
// Driver packages register themselves from init:
//
//	func init() {
//	    panel.RegisterDriver("it8951", 100, open, probe)
//	}
func RegisterDriver(name string, priority int, factory DriverFactory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	drivers.mu.Lock()
	defer drivers.mu.Unlock()

	drivers.entries[name] = &DriverEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// UnregisterDriver removes a driver from the registry.
func UnregisterDriver(name string) {
	drivers.mu.Lock()
	defer drivers.mu.Unlock()

	delete(drivers.entries, name)
}

// Drivers returns all registered driver names, highest priority first.
func Drivers() []string {
	drivers.mu.RLock()
	defer drivers.mu.RUnlock()

	return sortedDrivers(false)
}

// AvailableDrivers returns the names of drivers that can run here,
// highest priority first.
func AvailableDrivers() []string {
	drivers.mu.RLock()
	defer drivers.mu.RUnlock()

	return sortedDrivers(true)
}

// LookupDriver returns a copy of the entry registered under name.
func LookupDriver(name string) (*DriverEntry, bool) {
	drivers.mu.RLock()
	defer drivers.mu.RUnlock()

	e, ok := drivers.entries[name]
	if !ok {
		return nil, false
	}
	c := *e
	return &c, true
}

// openDriver opens the named driver, or the best available one when name
// is empty.
func openDriver(name string, cfg DriverConfig) (Transport, string, error) {
	if name != "" {
		t, err := openDriverByName(name, cfg)
		return t, name, err
	}

	drivers.mu.RLock()
	available := sortedDrivers(true)
	drivers.mu.RUnlock()

	var lastErr error
	for _, n := range available {
		t, err := openDriverByName(n, cfg)
		if err == nil {
			return t, n, nil
		}
		Logger().Debug("panel: driver failed", "driver", n, "err", err)
		lastErr = err
	}
	if lastErr != nil {
		return nil, "", lastErr
	}
	return nil, "", ErrNoDriverAvailable
}

func openDriverByName(name string, cfg DriverConfig) (Transport, error) {
	drivers.mu.RLock()
	e, ok := drivers.entries[name]
	drivers.mu.RUnlock()

	if !ok {
		return nil, &DriverNotFoundError{Name: name}
	}
	if !e.Available() {
		return nil, &DriverUnavailableError{Name: name}
	}
	return e.Factory(cfg)
}

// sortedDrivers must be called with drivers.mu held.
func sortedDrivers(onlyAvailable bool) []string {
	if len(drivers.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}
	entries := make([]entry, 0, len(drivers.entries))
	for name, e := range drivers.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	// Name breaks ties so selection does not depend on map order.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
