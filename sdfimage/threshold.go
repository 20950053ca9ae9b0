package sdfimage

// ChannelSelector picks which channel of a Raster the thresholder reads.
type ChannelSelector int

const (
	// Alpha reads channel 1 (the default: alpha-channel shapes, e.g. a
	// glyph or icon rendered onto a transparent background).
	Alpha ChannelSelector = iota

	// Luminance reads channel 0.
	Luminance
)

// thresholdLevel is fixed at half of 255, rounded down, per spec.md §4.1:
// "implementations MUST NOT change it to preserve bit-exact
// reproducibility with reference outputs."
const thresholdLevel = 127

// Threshold reads channel from r and produces a Mask where
//
//	mask[p] = (byte(p) > 127) XOR invert
//
// grounded on other_examples/bithoarder-distancefield__main.go's
// NewMonochromeFromTreshold for the general "read one channel, compare
// against a fixed point, emit a boolean plane" shape, restricted here to
// the fixed 127 threshold spec.md §4.1 mandates rather than
// bithoarder's user-configurable gray/alpha thresholds.
func Threshold(r *Raster, channel ChannelSelector, invert bool) *Mask {
	m := NewMask(r.W, r.H)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			var b byte
			if channel == Luminance {
				b = r.Luminance(x, y)
			} else {
				b = r.Alpha(x, y)
			}
			inside := b > thresholdLevel
			if invert {
				inside = !inside
			}
			m.Bits[y*m.W+x] = inside
		}
	}
	return m
}
