//go:build !nogpu

package window

import (
	"log/slog"

	"github.com/gogpu/ngon"
)

// slogger returns the package logger, shared with the root ngon package.
func slogger() *slog.Logger {
	return ngon.Logger()
}
