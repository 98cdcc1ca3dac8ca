// Package must wraps the error-returning fourbar API with panicking
// variants for programs building a known-good mechanism, where invalid
// geometry is a bug rather than an input to recover from.
package must

import (
	"github.com/soypat/fourbar"
	"github.com/soypat/fourbar/fit"
)

// Synthesize is fourbar.Synthesize that panics on error.
func Synthesize(positions []fourbar.AnglePair, ground float64) fourbar.Linkage {
	l, err := fourbar.Synthesize(positions, ground)
	if err != nil {
		panic(err)
	}
	return l
}

// Fit is fit.Synthesize that panics on error.
func Fit(positions []fourbar.AnglePair, ground float64) fourbar.Linkage {
	l, err := fit.Synthesize(positions, ground)
	if err != nil {
		panic(err)
	}
	return l
}

// At is Linkage.At that panics on error.
func At(l fourbar.Linkage, theta float64, mode fourbar.Mode) fourbar.Pose {
	p, err := l.At(theta, mode)
	if err != nil {
		panic(err)
	}
	return p
}
