package panel

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/panel/font"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for panel, its font registry and the
// active transport. By default panel produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by panel:
//   - [slog.LevelDebug]: font misses, image decode failures
//   - [slog.LevelInfo]: device setup, driver selection
//   - [slog.LevelWarn]: sprite allocation failures, font face fallbacks
//
// Example:
//
//	panel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	font.SetLogger(l)

	setupMu.Lock()
	d := device
	setupMu.Unlock()
	if d != nil {
		propagateLogger(d.transport, l)
	}
}

// Logger returns the current logger. Driver packages call it to share
// the configuration without an import cycle.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by transports that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

func propagateLogger(t Transport, l *slog.Logger) {
	if ls, ok := t.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
