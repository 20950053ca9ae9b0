package edt

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr stores the logger used for per-phase EDT timing output.
// sdfgen.SetLogger propagates its logger here (see logger.go's SetLogger),
// so a caller configures logging once at the sdfgen level and edt's
// row/transpose/column/transpose-back phases pick it up automatically.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger overrides the logger used for edt's per-phase debug output.
// Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently used for edt's per-phase debug
// output. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
