package ang

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	for _, tc := range []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{-3 * math.Pi, math.Pi},
		{1.5 * math.Pi, -0.5 * math.Pi},
		{-1.5 * math.Pi, 0.5 * math.Pi},
		{10 * math.Pi, 0},
	} {
		got := Wrap(tc.in)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Wrap(%g)=%g, want %g", tc.in, got, tc.want)
		}
		if got <= -math.Pi || got > math.Pi {
			t.Errorf("Wrap(%g)=%g outside (-pi, pi]", tc.in, got)
		}
	}
}

func TestDelta(t *testing.T) {
	for _, tc := range []struct {
		a, b, want float64
	}{
		{0.1, -0.1, 0.2},
		{-0.1, 0.1, -0.2},
		// Shortest way across the ±pi seam.
		{math.Pi - 0.1, -math.Pi + 0.1, -0.2},
		{-math.Pi + 0.1, math.Pi - 0.1, 0.2},
		{7, 7, 0},
	} {
		if got := Delta(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Delta(%g, %g)=%g, want %g", tc.a, tc.b, got, tc.want)
		}
	}
}
