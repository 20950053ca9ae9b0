// Package sdfimage is the decoder/encoder/thresholder collaborator boundary
// for sdfgen: it turns an arbitrary source image into a fixed 2-channel
// (luminance, alpha) raster, thresholds one of its channels into a boolean
// Mask, and writes a single-channel byte plane back out in one of four
// container formats.
package sdfimage

// Raster is a decoded source image, always normalized to exactly 2
// channels: channel 0 is luminance, channel 1 is alpha (spec.md §3's
// Image8, restricted to C=2 by this package's decode contract — see
// Decode's doc comment for how channel 0/1 are derived from arbitrary
// source formats).
type Raster struct {
	W, H int
	// Pix is row-major, 2 bytes per pixel: Pix[2*(y*W+x)+0] is luminance,
	// Pix[2*(y*W+x)+1] is alpha.
	Pix []byte
}

// NewRaster allocates a zeroed W×H 2-channel raster.
func NewRaster(w, h int) *Raster {
	return &Raster{W: w, H: h, Pix: make([]byte, w*h*2)}
}

// Luminance returns the luminance byte at (x, y).
func (r *Raster) Luminance(x, y int) byte {
	return r.Pix[2*(y*r.W+x)]
}

// Alpha returns the alpha byte at (x, y).
func (r *Raster) Alpha(x, y int) byte {
	return r.Pix[2*(y*r.W+x)+1]
}

// Mask is a row-major W×H boolean plane: true marks an "inside" pixel
// (spec.md §3).
type Mask struct {
	W, H int
	Bits []bool
}

// NewMask allocates a zeroed (all-false) W×H mask.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, Bits: make([]bool, w*h)}
}

// At returns the mask value at (x, y).
func (m *Mask) At(x, y int) bool {
	return m.Bits[y*m.W+x]
}
