package fourbar

import (
	"fmt"
	"math"

	"github.com/soypat/fourbar/internal/ang"
	"gonum.org/v1/gonum/spatial/r2"
)

// Output solves the rocker angle at crank angle theta (radians) for a
// fixed assembly mode, normalized to (-pi, pi]. ModeNearest with no sweep
// history resolves to the open branch; use OutputNear to track a sweep.
func (l Linkage) Output(theta float64, mode Mode) (float64, error) {
	open, closed, err := l.candidates(theta)
	if err != nil {
		return 0, err
	}
	switch mode {
	case ModeOpen, ModeNearest:
		return ang.Wrap(open), nil
	case ModeClosed:
		return ang.Wrap(closed), nil
	}
	panic("invalid assembly mode")
}

// OutputNear solves the rocker angle at crank angle theta (radians) on
// the assembly branch nearest prev, the previously resolved output angle
// of a continuous sweep. The result is prev plus the signed branch
// difference, so a swept sequence accumulates continuously in the reals
// instead of wrapping at ±pi.
func (l Linkage) OutputNear(theta, prev float64) (float64, error) {
	open, closed, err := l.candidates(theta)
	if err != nil {
		return 0, err
	}
	do := ang.Delta(open, prev)
	dc := ang.Delta(closed, prev)
	if math.Abs(dc) < math.Abs(do) {
		return prev + dc, nil
	}
	return prev + do, nil
}

// At assembles the mechanism at crank angle theta (radians) in a fixed
// assembly mode and returns the full joint pose.
func (l Linkage) At(theta float64, mode Mode) (Pose, error) {
	phi, err := l.Output(theta, mode)
	if err != nil {
		return Pose{}, err
	}
	return l.pose(theta, phi), nil
}

// AtNear is At with branch continuity; see OutputNear.
func (l Linkage) AtNear(theta, prev float64) (Pose, error) {
	phi, err := l.OutputNear(theta, prev)
	if err != nil {
		return Pose{}, err
	}
	return l.pose(theta, phi), nil
}

// TransmissionAngle returns the angle between coupler and rocker at crank
// angle theta (radians), in [0, pi]. Values near pi/2 transmit force
// best; the usual design guideline keeps it between about 40 and 140
// degrees over the working range.
func (l Linkage) TransmissionAngle(theta float64) (float64, error) {
	d, _, err := l.diagonal(theta)
	if err != nil {
		return 0, err
	}
	cpl, rck := math.Abs(l.Coupler), math.Abs(l.Rocker)
	return math.Acos(clamp((cpl*cpl+rck*rck-d*d)/(2*cpl*rck), -1, 1)), nil
}

// candidates resolves the loop-closure equation at crank angle theta and
// returns the rocker angles of both assembly configurations, open first.
func (l Linkage) candidates(theta float64) (open, closed float64, err error) {
	d, dir, err := l.diagonal(theta)
	if err != nil {
		return 0, 0, err
	}
	cpl, rck := math.Abs(l.Coupler), math.Abs(l.Rocker)
	// Law of cosines at O4. The clamp only absorbs roundoff at the
	// tangency boundary; non-intersecting circles were rejected above.
	gamma := math.Acos(clamp((d*d+rck*rck-cpl*cpl)/(2*d*rck), -1, 1))
	open, closed = dir+gamma, dir-gamma
	if l.Rocker < 0 {
		// B sits opposite the rocker direction for mirrored rockers.
		open += pi
		closed += pi
	}
	return open, closed, nil
}

// diagonal returns the length and direction of the floating diagonal from
// the rocker pivot O4 to the crank pin A, rejecting crank angles at which
// the coupler and rocker circles do not intersect.
func (l Linkage) diagonal(theta float64) (d, dir float64, err error) {
	rel := r2.Sub(l.crankPin(theta), r2.Vec{X: l.Ground})
	d = r2.Norm(rel)
	cpl, rck := math.Abs(l.Coupler), math.Abs(l.Rocker)
	if d > cpl+rck || d < math.Abs(cpl-rck) || d == 0 {
		return 0, 0, fmt.Errorf("%w: theta=%g rad, diagonal %g outside [%g, %g]",
			ErrUnreachable, theta, d, math.Abs(cpl-rck), cpl+rck)
	}
	return d, math.Atan2(rel.Y, rel.X), nil
}

func (l Linkage) crankPin(theta float64) r2.Vec {
	return r2.Vec{X: l.Crank * math.Cos(theta), Y: l.Crank * math.Sin(theta)}
}

func (l Linkage) pose(theta, phi float64) Pose {
	o4 := r2.Vec{X: l.Ground}
	return Pose{
		Theta: theta,
		Phi:   phi,
		A:     l.crankPin(theta),
		B:     r2.Add(o4, r2.Vec{X: l.Rocker * math.Cos(phi), Y: l.Rocker * math.Sin(phi)}),
		O4:    o4,
	}
}
