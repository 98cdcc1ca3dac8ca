// Package ang provides the angle wrapping arithmetic shared by the
// fourbar packages.
package ang

import "math"

const (
	pi  = math.Pi
	tau = 2 * pi
)

// Wrap normalizes an angle in radians to (-pi, pi].
func Wrap(a float64) float64 {
	a = math.Mod(a, tau)
	switch {
	case a <= -pi:
		a += tau
	case a > pi:
		a -= tau
	}
	return a
}

// Delta returns the signed angular difference a-b normalized to (-pi, pi].
func Delta(a, b float64) float64 {
	return Wrap(a - b)
}
