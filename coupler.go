package fourbar

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CouplerPoint returns a point rigidly attached to the coupler of an
// assembled pose: along measures from pin A toward pin B along the
// coupler axis, offset measures perpendicular to it, positive to the left
// of the A to B direction. Tracing the point over a sweep draws the
// coupler curve of the mechanism.
//
// Panics if the pose has coincident pins A and B.
func (p Pose) CouplerPoint(along, offset float64) r2.Vec {
	ab := r2.Sub(p.B, p.A)
	n := r2.Norm(ab)
	if n == 0 {
		panic("coupler point on zero-length coupler")
	}
	u := r2.Scale(1/n, ab)
	return r2.Vec{
		X: p.A.X + along*u.X - offset*u.Y,
		Y: p.A.Y + along*u.Y + offset*u.X,
	}
}

// CouplerAngle returns the orientation of the coupler axis A to B in
// radians.
func (p Pose) CouplerAngle() float64 {
	ab := r2.Sub(p.B, p.A)
	return math.Atan2(ab.Y, ab.X)
}
