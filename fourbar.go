package fourbar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pi  = math.Pi
	tau = 2 * pi
	// singularEps rejects synthesis systems whose determinant magnitude
	// is below it.
	singularEps = 1e-12
	// infeasibleEps is how negative the recovered squared coupler length
	// may be before the precision positions are declared infeasible
	// instead of rounding the length to zero.
	infeasibleEps = 1e-6
	// grashofTol is the relative band around s+l == p+q treated as a
	// change-point linkage.
	grashofTol = 1e-9
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// clamp x between a and b, assume a <= b
func clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Linkage is a planar four-bar mechanism given by its four link lengths.
// The ground link lies on the x axis between the crank pivot O2 at the
// origin and the rocker pivot O4 at (Ground, 0).
//
// Linkage is a value type: methods never modify it and a new synthesis
// returns a fresh value.
type Linkage struct {
	// Ground is the fixed link O2-O4 (r1).
	Ground float64
	// Crank is the input link O2-A (r2).
	Crank float64
	// Coupler is the floating link A-B (r3).
	Coupler float64
	// Rocker is the output link O4-B (r4).
	Rocker float64
}

// Validate returns an error unless every link length is a positive real.
// Synthesize can legitimately return a negative Crank or Rocker, meaning
// the link assembles phased 180 degrees from its angle convention; callers
// that need physical bar lengths check here.
func (l Linkage) Validate() error {
	links := [...]struct {
		name string
		r    float64
	}{
		{"ground", l.Ground},
		{"crank", l.Crank},
		{"coupler", l.Coupler},
		{"rocker", l.Rocker},
	}
	for _, lk := range links {
		if math.IsNaN(lk.r) || lk.r <= 0 {
			return fmt.Errorf("%w: %s=%g", ErrNonPositiveLength, lk.name, lk.r)
		}
	}
	return nil
}

// Mode selects between the two assembly configurations that solve the
// loop-closure equation at a given crank angle.
type Mode int

const (
	// ModeOpen is the delta+gamma root of the position analysis.
	ModeOpen Mode = iota
	// ModeClosed is the delta-gamma root, the mirror-image ("crossed")
	// configuration of the coupler-rocker pair.
	ModeClosed
	// ModeNearest picks the branch nearest the previously resolved
	// output angle so a swept mechanism never jumps configurations.
	// Without sweep history it falls back to the open branch.
	ModeNearest
)

func (m Mode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModeClosed:
		return "closed"
	case ModeNearest:
		return "nearest"
	}
	return "unknown"
}

// Pose is the assembled mechanism at one crank angle. O2 is always the
// origin and O4 is (Ground, 0); A and B are the moving pins. Poses are
// transient values recomputed on every evaluation.
type Pose struct {
	// Theta is the crank angle in radians.
	Theta float64
	// Phi is the resolved rocker angle in radians.
	Phi float64
	O2  r2.Vec
	A   r2.Vec
	B   r2.Vec
	O4  r2.Vec
}
