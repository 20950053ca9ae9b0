// Package sdfield builds the seed fields the EDT engine consumes and
// combines its two outputs into a single signed distance field.
package sdfield

import (
	"math"

	"github.com/chaq-sdf/sdfgen/edt"
	"github.com/chaq-sdf/sdfgen/sdfimage"
)

// Polarity selects which side of a Mask becomes the seed set for Seed.
type Polarity int

const (
	// SeedsAreTrue treats mask[p] == true pixels as seeds (distance 0);
	// used to build F_in.
	SeedsAreTrue Polarity = iota

	// SeedsAreFalse treats mask[p] == false pixels as seeds; used to
	// build F_out.
	SeedsAreFalse
)

// Seed builds a FloatField from mask: cells matching polarity become 0,
// all others become +Inf. Both F_in and F_out must be built from the same
// mask with opposite polarities (spec.md §4.2: "Inside/outside transforms
// are both computed").
func Seed(mask *sdfimage.Mask, polarity Polarity) *edt.Field {
	f := &edt.Field{W: mask.W, H: mask.H, Data: make([]float64, mask.W*mask.H)}
	inf := math.Inf(1)

	for i, inside := range mask.Bits {
		isSeed := inside
		if polarity == SeedsAreFalse {
			isSeed = !inside
		}
		if isSeed {
			f.Data[i] = 0
		} else {
			f.Data[i] = inf
		}
	}
	return f
}
