//go:build !nogpu

package gpu

import (
	"log/slog"

	"github.com/gogpu/ngon"
)

// slogger returns the current package logger.
// All logging in internal/gpu goes through this function so that
// ngon.SetLogger reaches the renderer.
func slogger() *slog.Logger { return ngon.Logger() }
