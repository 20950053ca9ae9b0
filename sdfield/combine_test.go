package sdfield

import (
	"math"
	"testing"

	"github.com/chaq-sdf/sdfgen/edt"
)

func field(w, h int, vals ...float64) *edt.Field {
	return &edt.Field{W: w, H: h, Data: vals}
}

func TestCombine_InsidePixel(t *testing.T) {
	// Inside pixel: d_in = 0, d_out > 0.
	fIn := field(1, 1, 0)
	fOut := field(1, 1, 5)
	s := Combine(fIn, fOut)

	want := 0 - math.Max(0, 5-1)
	if s.At(0, 0) != want {
		t.Errorf("got %v want %v", s.At(0, 0), want)
	}
	if s.At(0, 0) > 0 {
		t.Error("inside pixel must not have positive signed distance")
	}
}

func TestCombine_OutsidePixel(t *testing.T) {
	// Outside pixel: d_in > 0, d_out = 0.
	fIn := field(1, 1, 3)
	fOut := field(1, 1, 0)
	s := Combine(fIn, fOut)

	want := 3.0
	if s.At(0, 0) != want {
		t.Errorf("got %v want %v", s.At(0, 0), want)
	}
	if s.At(0, 0) < 0 {
		t.Error("outside pixel must not have negative signed distance")
	}
}

// Combiner sign law (spec.md §8): inside pixels get s<=0, outside get s>=0.
func TestCombine_SignLaw(t *testing.T) {
	cases := []struct {
		dIn, dOut float64
		inside    bool
	}{
		{0, 4, true},
		{0, 1, true},
		{0, 0.5, true},
		{5, 0, false},
		{0.5, 0, false},
		{2, 0, false},
	}

	for _, c := range cases {
		s := Combine(field(1, 1, c.dIn), field(1, 1, c.dOut))
		got := s.At(0, 0)
		if c.inside && got > 0 {
			t.Errorf("dIn=%v dOut=%v: inside pixel got positive %v", c.dIn, c.dOut, got)
		}
		if !c.inside && got < 0 {
			t.Errorf("dIn=%v dOut=%v: outside pixel got negative %v", c.dIn, c.dOut, got)
		}
	}
}

func TestCombine_BiasOnlyAppliesToOutsideBranch(t *testing.T) {
	// d_out - 1 with d_out < 1 must clamp to 0, not go negative.
	s := Combine(field(1, 1, 0), field(1, 1, 0.3))
	if s.At(0, 0) != 0 {
		t.Errorf("got %v want 0 (max(0, dOut-1) clamps at 0)", s.At(0, 0))
	}
}
