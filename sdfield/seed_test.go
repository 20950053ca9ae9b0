package sdfield

import (
	"math"
	"testing"

	"github.com/chaq-sdf/sdfgen/sdfimage"
)

func TestSeed_SeedsAreTrue(t *testing.T) {
	mask := &sdfimage.Mask{W: 3, H: 1, Bits: []bool{true, false, true}}
	f := Seed(mask, SeedsAreTrue)

	if f.At(0, 0) != 0 || f.At(2, 0) != 0 {
		t.Error("true cells should be seeded to 0")
	}
	if !math.IsInf(f.At(1, 0), 1) {
		t.Error("false cell should be +Inf")
	}
}

func TestSeed_SeedsAreFalse(t *testing.T) {
	mask := &sdfimage.Mask{W: 3, H: 1, Bits: []bool{true, false, true}}
	f := Seed(mask, SeedsAreFalse)

	if !math.IsInf(f.At(0, 0), 1) || !math.IsInf(f.At(2, 0), 1) {
		t.Error("true cells should be +Inf under SeedsAreFalse")
	}
	if f.At(1, 0) != 0 {
		t.Error("false cell should be seeded to 0 under SeedsAreFalse")
	}
}

func TestSeed_OppositePolaritiesArePartition(t *testing.T) {
	mask := &sdfimage.Mask{W: 4, H: 4, Bits: make([]bool, 16)}
	for i := range mask.Bits {
		mask.Bits[i] = i%3 == 0
	}

	fin := Seed(mask, SeedsAreTrue)
	fout := Seed(mask, SeedsAreFalse)

	for i := range mask.Bits {
		inSeed := fin.Data[i] == 0
		outSeed := fout.Data[i] == 0
		if inSeed == outSeed {
			t.Errorf("index %d: exactly one of F_in/F_out must be seeded, got in=%v out=%v", i, inSeed, outSeed)
		}
	}
}
