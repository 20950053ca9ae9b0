package sdfield

import (
	"math"

	"github.com/chaq-sdf/sdfgen/edt"
)

// Signed is a row-major W×H plane of signed Euclidean distances: positive
// outside a shape, negative inside (spec.md §4.4).
type Signed struct {
	W, H int
	Data []float64
}

// Combine collapses the two rooted-distance fields produced by
// edt.Transform2D (inside-seeded fIn, outside-seeded fOut) into a single
// Signed field, per spec.md §4.4:
//
//	s[p] = d_in - max(0, d_out - 1)
//
// The 1-pixel bias is applied only to the positive-d_out branch and is
// preserved bit-for-bit rather than replaced by a symmetric 0.5px bias on
// both sides — see spec.md §9's open question and DESIGN.md's decision.
// fIn and fOut must have identical dimensions and must already hold true
// (rooted) distances, not squared distances.
func Combine(fIn, fOut *edt.Field) *Signed {
	s := &Signed{W: fIn.W, H: fIn.H, Data: make([]float64, len(fIn.Data))}
	for i := range s.Data {
		dIn := fIn.Data[i]
		dOut := fOut.Data[i]
		s.Data[i] = dIn - math.Max(0, dOut-1)
	}
	return s
}

// At returns the signed distance at (x, y).
func (s *Signed) At(x, y int) float64 {
	return s.Data[y*s.W+x]
}
