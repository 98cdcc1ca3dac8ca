// Package fit synthesizes four-bar linkages from precision position sets
// the exact three-position method does not cover: overdetermined sets are
// fitted by least squares and polished with a derivative-free search.
package fit

import (
	"fmt"
	"math"

	"github.com/soypat/fourbar"
	"github.com/soypat/fourbar/internal/ang"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// Synthesize dispatches on the number of precision positions: exactly
// three uses the closed-form solver, more are fitted in the least squares
// sense and refined with Nelder-Mead. Fewer than three positions leave
// the linkage underdetermined and are rejected.
func Synthesize(positions []fourbar.AnglePair, ground float64) (fourbar.Linkage, error) {
	switch {
	case len(positions) < 3:
		return fourbar.Linkage{}, fmt.Errorf("%w: got %d, need at least 3", fourbar.ErrPositionCount, len(positions))
	case len(positions) == 3:
		return fourbar.Synthesize(positions, ground)
	}
	seed, err := leastSquares(positions, ground)
	if err != nil {
		return fourbar.Linkage{}, err
	}
	return refine(seed, positions), nil
}

// leastSquares solves the overdetermined Freudenstein system in the least
// squares sense via QR and recovers link lengths from the fitted
// coefficients.
func leastSquares(positions []fourbar.AnglePair, ground float64) (fourbar.Linkage, error) {
	n := len(positions)
	a := mat.NewDense(n, 3, nil)
	b := mat.NewVecDense(n, nil)
	for i, p := range positions {
		theta := fourbar.DtoR(p.Theta)
		phi := fourbar.DtoR(p.Phi)
		a.SetRow(i, []float64{1, math.Cos(phi), -math.Cos(theta)})
		b.SetVec(i, math.Cos(phi-theta))
	}
	var z mat.VecDense
	if err := z.SolveVec(a, b); err != nil {
		return fourbar.Linkage{}, fmt.Errorf("%w: rank-deficient position set: %v", fourbar.ErrSingular, err)
	}
	return fourbar.LinkageFromFreudenstein(z.AtVec(0), z.AtVec(1), z.AtVec(2), ground)
}

// refine polishes the moving link lengths with Nelder-Mead, minimizing
// the summed squared output-angle error over the precision positions. The
// seed is kept whenever optimization fails or does not improve on it.
func refine(seed fourbar.Linkage, positions []fourbar.AnglePair) fourbar.Linkage {
	at := func(x []float64) fourbar.Linkage {
		return fourbar.Linkage{Ground: seed.Ground, Crank: x[0], Coupler: x[1], Rocker: x[2]}
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 { return residual(at(x), positions) },
	}
	x0 := []float64{seed.Crank, seed.Coupler, seed.Rocker}
	result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{})
	if err != nil || result.F >= residual(seed, positions) {
		return seed
	}
	return at(result.X)
}

// residual is the summed squared wrapped error between the prescribed
// output angles and the nearest assembly branch. Precision positions the
// candidate cannot even reach are charged a flat pi² penalty.
func residual(l fourbar.Linkage, positions []fourbar.AnglePair) float64 {
	var sum float64
	for _, p := range positions {
		theta := fourbar.DtoR(p.Theta)
		want := fourbar.DtoR(p.Phi)
		got, err := l.OutputNear(theta, want)
		if err != nil {
			sum += math.Pi * math.Pi
			continue
		}
		d := ang.Delta(got, want)
		sum += d * d
	}
	return sum
}
