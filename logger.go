package ngon

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a window backend is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ngon and all its sub-packages.
// By default, ngon produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by ngon:
//   - [slog.LevelDebug]: buffer sizes, clamped side counts, pipeline creation
//   - [slog.LevelInfo]: side count changes, selected backend
//   - [slog.LevelWarn]: non-fatal issues (frame skipped, bad config entry)
//
// Example:
//
//	ngon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ngon.
// Sub-packages (internal/gpu, internal/window, ...) call this to share
// the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
