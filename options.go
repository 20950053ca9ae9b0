package sdfgen

import "github.com/chaq-sdf/sdfgen/sdfimage"

// Option configures a Convert call. Use functional options to customize
// behavior beyond the required spread parameter, following the teacher's
// ContextOption pattern (its options.go's WithRenderer/WithPixmap).
//
// Example:
//
//	out, err := sdfgen.Convert(ctx, raster, 4, sdfgen.WithChannel(sdfimage.Luminance))
type Option func(*settings)

// settings holds the resolved configuration for a Convert call.
type settings struct {
	channel    sdfimage.ChannelSelector
	invert     bool
	asymmetric bool
	quality    int
	workers    int
}

// defaultSettings returns Convert's defaults: alpha-channel thresholding,
// no inversion, symmetric quantization, full JPEG quality, and a
// GOMAXPROCS-sized worker pool per side.
func defaultSettings() settings {
	return settings{
		channel:    sdfimage.Alpha,
		invert:     false,
		asymmetric: false,
		quality:    100,
		workers:    0,
	}
}

// WithChannel selects which decoded channel the thresholder reads.
func WithChannel(c sdfimage.ChannelSelector) Option {
	return func(s *settings) { s.channel = c }
}

// WithInvert flips the thresholder's inside/outside comparison.
func WithInvert(invert bool) Option {
	return func(s *settings) { s.invert = invert }
}

// WithAsymmetric selects the quantizer's [0, spread] source range instead
// of the default symmetric [-spread, spread].
func WithAsymmetric(asymmetric bool) Option {
	return func(s *settings) { s.asymmetric = asymmetric }
}

// WithQuality sets the JPEG quality used when the output format is
// sdfimage.FormatJPEG; ignored for other formats. Clamped to 1..100 at
// encode time.
func WithQuality(quality int) Option {
	return func(s *settings) { s.quality = quality }
}

// WithWorkers sets the size of the worker pool used by the EDT engine on
// each side (inside/outside). 0, the default, uses GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(s *settings) { s.workers = workers }
}
