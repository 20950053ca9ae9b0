package sdfgen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chaq-sdf/sdfgen/edt"
	"github.com/chaq-sdf/sdfgen/quantize"
	"github.com/chaq-sdf/sdfgen/sderr"
	"github.com/chaq-sdf/sdfgen/sdfield"
	"github.com/chaq-sdf/sdfgen/sdfimage"
)

// maxPixels bounds W*H before any buffer is allocated, so a pathological
// input fails fast with ErrOutOfMemory instead of an unrecoverable Go
// runtime OOM (spec.md §7 / SPEC_FULL.md §7 — Go has no way to recover
// from a failed make() the way the original C tool could check malloc's
// return value, so the check happens before the allocation is attempted).
const maxPixels = 64 * 1024 * 1024

// Convert runs the full pipeline — threshold, seed, EDT (inside and
// outside), combine, quantize — over raster and returns a single-channel
// byte plane of the same dimensions, one byte per pixel (spec.md §2's
// end-to-end operation). spread must be a positive pixel count.
//
// ctx is checked between each barrier phase (threshold+seed, EDT,
// combine, quantize) so a caller embedding sdfgen as a library can cancel
// a large conversion; the EDT engine itself never blocks on ctx mid-row.
// Pass context.Background() when cancellation is not needed.
func Convert(ctx context.Context, raster *sdfimage.Raster, spread int, opts ...Option) ([]byte, error) {
	if raster == nil || raster.W <= 0 || raster.H <= 0 {
		return nil, fmt.Errorf("sdfgen: convert: %w: empty raster", sderr.ErrInvalidArguments)
	}
	if spread <= 0 {
		return nil, fmt.Errorf("sdfgen: convert: %w: spread must be positive, got %d", sderr.ErrInvalidArguments, spread)
	}
	if raster.W*raster.H > maxPixels {
		return nil, fmt.Errorf("sdfgen: convert: %w: %dx%d exceeds pixel ceiling", sderr.ErrOutOfMemory, raster.W, raster.H)
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	log := Logger()
	log.Info("resolved parameters",
		"width", raster.W, "height", raster.H, "spread", spread,
		"channel", s.channel, "invert", s.invert, "asymmetric", s.asymmetric,
		"workers", s.workers)

	mask := sdfimage.Threshold(raster, s.channel, s.invert)
	warnIfDegenerate(log, mask)

	fIn := sdfield.Seed(mask, sdfield.SeedsAreTrue)
	fOut := sdfield.Seed(mask, sdfield.SeedsAreFalse)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sdfgen: convert: canceled before edt transform: %w", err)
	}

	start := time.Now()
	edt.TransformSides(fIn, fOut, s.workers)
	log.Debug("edt transform complete", "elapsed", time.Since(start))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sdfgen: convert: canceled before combine: %w", err)
	}

	signed := sdfield.Combine(fIn, fOut)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sdfgen: convert: canceled before quantize: %w", err)
	}

	return quantize.Quantize(signed, spread, s.asymmetric), nil
}

// warnIfDegenerate logs at slog.LevelWarn when mask has no true bits or no
// false bits — every seed set collapses to one side, so the resulting
// field is a flat plateau rather than a meaningful distance field.
func warnIfDegenerate(log *slog.Logger, mask *sdfimage.Mask) {
	sawTrue, sawFalse := false, false
	for _, b := range mask.Bits {
		if b {
			sawTrue = true
		} else {
			sawFalse = true
		}
		if sawTrue && sawFalse {
			return
		}
	}
	if !sawTrue {
		log.Warn("threshold produced an all-outside mask; output will be uniformly positive-clamped")
	}
	if !sawFalse {
		log.Warn("threshold produced an all-inside mask; output will be uniformly negative-clamped")
	}
}

// ConvertFile decodes inPath, runs Convert, and encodes the result to a
// single-channel image in format, writing it to outPath. This is the
// library entry point cmd/sdfgen wraps for its CLI surface.
func ConvertFile(ctx context.Context, inPath, outPath string, spread int, format sdfimage.Format, opts ...Option) error {
	raster, err := sdfimage.DecodeFile(inPath)
	if err != nil {
		return fmt.Errorf("sdfgen: %w: %v", sderr.ErrDecode, err)
	}

	out, err := Convert(ctx, raster, spread, opts...)
	if err != nil {
		return err
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	if err := sdfimage.EncodeFile(outPath, format, raster.W, raster.H, out, s.quality); err != nil {
		return fmt.Errorf("sdfgen: %w: %v", sderr.ErrEncode, err)
	}
	return nil
}
