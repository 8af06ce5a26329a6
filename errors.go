package panel

import (
	"errors"

	"github.com/gogpu/panel/internal/image"
)

// Errors.
var (
	// ErrAlreadySetup is returned by Setup after the device was acquired.
	ErrAlreadySetup = errors.New("panel: device already set up")

	// ErrOutOfMemory is returned when a sprite buffer cannot be allocated.
	ErrOutOfMemory = image.ErrOutOfMemory

	// ErrInvalidDimensions is returned for non-positive sprite sizes.
	ErrInvalidDimensions = image.ErrInvalidDimensions

	// ErrInvalidFormat is returned when a transport reports a pixel
	// format outside the supported set.
	ErrInvalidFormat = image.ErrInvalidFormat

	// ErrUnknownFont is returned by SetFont for identifiers not wired
	// into this build.
	ErrUnknownFont = errors.New("panel: unknown font")

	// ErrInvalidScale is returned for zero, negative or unrepresentably
	// large image scales.
	ErrInvalidScale = errors.New("panel: invalid image scale")

	// ErrImageDecode wraps decoder failures from DrawPNG and DrawImage.
	ErrImageDecode = errors.New("panel: image decode failed")

	// ErrNoDriverAvailable is returned when no registered driver can open
	// a transport.
	ErrNoDriverAvailable = errors.New("panel: no driver available")
)

// DriverNotFoundError indicates a named driver is not registered.
type DriverNotFoundError struct {
	Name string
}

func (e *DriverNotFoundError) Error() string {
	return "panel: driver not found: " + e.Name
}

// DriverUnavailableError indicates a driver exists but cannot run here.
type DriverUnavailableError struct {
	Name string
}

func (e *DriverUnavailableError) Error() string {
	return "panel: driver unavailable: " + e.Name
}
