// Package sderr defines the sentinel error kinds surfaced by sdfgen.
//
// Every error sdfgen returns, other than a context cancellation (which
// wraps ctx.Err()), wraps one of these with fmt.Errorf's %w verb, so
// callers can classify failures with errors.Is regardless of which layer
// produced the wrapped detail.
package sderr

import "errors"

var (
	// ErrInvalidArguments marks a missing or ill-formed option value, such
	// as a non-positive spread or a quality outside 1..100.
	ErrInvalidArguments = errors.New("sdfgen: invalid arguments")

	// ErrDecode marks a failure to decode the source image.
	ErrDecode = errors.New("sdfgen: decode failed")

	// ErrEncode marks a failure to encode or write the output image.
	ErrEncode = errors.New("sdfgen: encode failed")

	// ErrOutOfMemory marks a buffer allocation that was rejected before
	// being attempted because the requested image size exceeds the
	// configured ceiling.
	ErrOutOfMemory = errors.New("sdfgen: out of memory")
)
