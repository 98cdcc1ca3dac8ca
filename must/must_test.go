package must_test

import (
	"testing"

	"github.com/soypat/fourbar"
	"github.com/soypat/fourbar/must"
)

var positions = []fourbar.AnglePair{
	{Theta: 35.02, Phi: 91.21},
	{Theta: 67.50, Phi: 101.79},
	{Theta: 100.0, Phi: 117.19},
}

func TestSynthesize(t *testing.T) {
	l := must.Synthesize(positions, 4.5)
	if l.Ground != 4.5 {
		t.Errorf("ground=%g, want 4.5", l.Ground)
	}
	pose := must.At(l, fourbar.DtoR(35.02), fourbar.ModeClosed)
	if pose.Theta != fourbar.DtoR(35.02) {
		t.Error("pose at wrong crank angle")
	}
	if l2 := must.Fit(positions, 4.5); l2 != l {
		t.Error("Fit with three positions must match Synthesize")
	}
}

func TestSynthesizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate crank angles did not panic")
		}
	}()
	must.Synthesize([]fourbar.AnglePair{
		{Theta: 10, Phi: 40},
		{Theta: 10, Phi: 70},
		{Theta: 50, Phi: 100},
	}, 1)
}

func TestAtPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unreachable crank angle did not panic")
		}
	}()
	l := fourbar.Linkage{Ground: 10, Crank: 3, Coupler: 4, Rocker: 4}
	must.At(l, fourbar.DtoR(90), fourbar.ModeOpen)
}
