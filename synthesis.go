package fourbar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// AnglePair is one precision position: a prescribed crank angle Theta and
// the rocker angle Phi the mechanism must reach at it. Both are degrees.
type AnglePair struct {
	Theta float64
	Phi   float64
}

// Synthesize computes the link lengths of a four-bar linkage whose rocker
// visits the three prescribed output angles as the crank visits the three
// prescribed input angles, with the ground link fixed to the given length.
//
// The solve is Freudenstein's closed-form three-position method: the
// loop-closure constraint, normalized to unit ground length, is linear in
// z1=(1+r2²+r4²-r3²)/(2·r2·r4), z2=1/r2, z3=1/r4, so the three positions
// form a 3x3 linear system. No iteration is involved and identical inputs
// reproduce identical lengths.
//
// The three crank angles must be pairwise distinct or the system is
// singular. A negative Crank or Rocker in the result is valid geometry,
// not an error; see Linkage.Validate.
func Synthesize(positions []AnglePair, ground float64) (Linkage, error) {
	if len(positions) != 3 {
		return Linkage{}, fmt.Errorf("%w, got %d", ErrPositionCount, len(positions))
	}
	if ground <= 0 || math.IsNaN(ground) {
		return Linkage{}, fmt.Errorf("%w: ground=%g", ErrNonPositiveLength, ground)
	}
	var a [9]float64
	var b [3]float64
	for i, p := range positions {
		theta := DtoR(p.Theta)
		phi := DtoR(p.Phi)
		a[3*i] = 1
		a[3*i+1] = math.Cos(phi)
		a[3*i+2] = -math.Cos(theta)
		b[i] = math.Cos(phi - theta)
	}
	z, err := cramer3(a, b)
	if err != nil {
		return Linkage{}, err
	}
	return LinkageFromFreudenstein(z[0], z[1], z[2], ground)
}

// LinkageFromFreudenstein recovers physical link lengths from the
// Freudenstein coefficients of a linkage normalized to unit ground
// length, scaled so the ground link has the given length. The package fit
// shares this recovery with the exact solver.
func LinkageFromFreudenstein(z1, z2, z3, ground float64) (Linkage, error) {
	if ground <= 0 || math.IsNaN(ground) {
		return Linkage{}, fmt.Errorf("%w: ground=%g", ErrNonPositiveLength, ground)
	}
	if z2 == 0 || z3 == 0 {
		return Linkage{}, fmt.Errorf("%w: diverging link length", ErrInfeasible)
	}
	crank := 1 / z2
	rocker := 1 / z3
	couplerSq := 1 + crank*crank + rocker*rocker - 2*crank*rocker*z1
	if couplerSq < -infeasibleEps {
		// Substantially negative means no real coupler closes the loop.
		return Linkage{}, fmt.Errorf("%w: squared coupler length %g", ErrInfeasible, couplerSq)
	}
	coupler := math.Sqrt(math.Max(0, couplerSq))
	return Linkage{
		Ground:  ground,
		Crank:   crank * ground,
		Coupler: coupler * ground,
		Rocker:  rocker * ground,
	}, nil
}

// cramer3 solves a 3x3 linear system by Cramer's rule.
func cramer3(a [9]float64, b [3]float64) ([3]float64, error) {
	m := mat.NewDense(3, 3, a[:])
	det := mat.Det(m)
	if math.Abs(det) < singularEps {
		return [3]float64{}, fmt.Errorf("%w: |det|=%g", ErrSingular, math.Abs(det))
	}
	var z [3]float64
	col := make([]float64, 3)
	for j := range z {
		mat.Col(col, j, m)
		m.SetCol(j, b[:])
		z[j] = mat.Det(m) / det
		m.SetCol(j, col)
	}
	return z, nil
}
