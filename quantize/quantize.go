// Package quantize maps a SignedField onto an 8-bit single-channel plane
// by clamping to a spread window and linearly remapping to 0..255
// (spec.md §4.5).
package quantize

import (
	"math"

	"github.com/chaq-sdf/sdfgen/sdfield"
)

// Quantize clamps every value of s into the source range implied by
// spread and asymmetric, then linearly remaps it to [0, 255] and rounds
// to the nearest byte. spread must be a positive integer pixel count.
//
// When asymmetric is true the source range is [0, spread] (grounded on
// other_examples/bithoarder-distancefield__main.go's "unsigned" mode,
// which likewise treats negative/inside distances as clamped to the
// bottom of the range); otherwise it is [-spread, spread].
func Quantize(s *sdfield.Signed, spread int, asymmetric bool) []byte {
	out := make([]byte, len(s.Data))
	lo, hi := sourceRange(spread, asymmetric)
	span := hi - lo

	for i, v := range s.Data {
		out[i] = quantizeOne(v, lo, span)
	}
	return out
}

func sourceRange(spread int, asymmetric bool) (lo, hi float64) {
	sp := float64(spread)
	if asymmetric {
		return 0, sp
	}
	return -sp, sp
}

// quantizeOne clamps v into [lo, lo+span] then maps it linearly onto
// [0, 255], rounding to nearest (ties-to-even via math.RoundToEven, per
// spec.md §4.5's "ties-to-even acceptable"). +Inf saturates to 255 and
// -Inf saturates to 0 without special-casing, since the clamp below
// already bounds v into [lo, lo+span] before the division.
func quantizeOne(v, lo, span float64) byte {
	clamped := v
	if clamped < lo {
		clamped = lo
	}
	if hi := lo + span; clamped > hi {
		clamped = hi
	}

	t := (clamped - lo) / span
	rounded := math.RoundToEven(t * 255)
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 255 {
		rounded = 255
	}
	return byte(rounded)
}
