// Package sdfgen converts a raster image into a single-channel 8-bit
// signed distance field via the exact Felzenszwalb-Huttenlocher 2-D
// Euclidean distance transform.
package sdfgen

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/chaq-sdf/sdfgen/edt"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by sdfgen and its sub-packages.
// By default, sdfgen produces no log output. Call SetLogger to enable it.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically, and propagates it to the edt package so the EDT engine's
// per-phase debug output shares the same configuration without a caller
// having to configure each package separately. Pass nil to disable
// logging (restore default silent behavior).
//
// Log levels used by sdfgen:
//   - [slog.LevelDebug]: per-phase EDT timings (row pass, transpose,
//     column pass, transpose-back), emitted by package edt
//   - [slog.LevelInfo]: resolved CLI parameters at startup
//   - [slog.LevelWarn]: degenerate inputs (an all-seed or no-seed side)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	sdfgen.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	edt.SetLogger(l)
}

// Logger returns the current logger used by sdfgen. Safe for concurrent
// use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
