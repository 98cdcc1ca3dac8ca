package fourbar

import "math"

// GrashofClass classifies a four-bar linkage by the Grashof condition:
// with s and l the shortest and longest links and p, q the other two, at
// least one link fully rotates iff s+l <= p+q, and which link that is
// depends on where the shortest link sits.
type GrashofClass int

const (
	// NonGrashof linkages have no fully rotating link (triple rocker).
	NonGrashof GrashofClass = iota
	// ChangePoint linkages satisfy s+l == p+q and can switch assembly
	// branch when all four links fold collinear.
	ChangePoint
	// CrankRocker: shortest link is the crank, which fully rotates.
	CrankRocker
	// DoubleCrank: shortest link is the ground; crank and rocker both
	// fully rotate.
	DoubleCrank
	// DoubleRocker: shortest link is the coupler; it rotates fully
	// relative to the others while crank and rocker oscillate.
	DoubleRocker
	// RockerCrank: shortest link is the rocker, which fully rotates
	// when driven.
	RockerCrank
)

func (g GrashofClass) String() string {
	switch g {
	case NonGrashof:
		return "non-Grashof"
	case ChangePoint:
		return "change point"
	case CrankRocker:
		return "crank-rocker"
	case DoubleCrank:
		return "double crank"
	case DoubleRocker:
		return "double rocker"
	case RockerCrank:
		return "rocker-crank"
	}
	return "unknown"
}

// Grashof classifies the linkage. Mirrored (negative) link lengths are
// classified by their magnitudes.
func (l Linkage) Grashof() GrashofClass {
	gnd := math.Abs(l.Ground)
	crk := math.Abs(l.Crank)
	cpl := math.Abs(l.Coupler)
	rck := math.Abs(l.Rocker)
	total := gnd + crk + cpl + rck
	s := math.Min(math.Min(gnd, crk), math.Min(cpl, rck))
	lng := math.Max(math.Max(gnd, crk), math.Max(cpl, rck))
	excess := (s + lng) - (total - s - lng)
	switch {
	case excess > grashofTol*total:
		return NonGrashof
	case excess > -grashofTol*total:
		return ChangePoint
	}
	switch s {
	case crk:
		return CrankRocker
	case gnd:
		return DoubleCrank
	case cpl:
		return DoubleRocker
	}
	return RockerCrank
}

// CrankRange returns the band of reachable crank angles in radians: a
// crank angle theta is reachable iff lo <= |theta| <= hi once wrapped to
// (-pi, pi]. A fully rotating crank returns (0, pi).
//
// The bounds come from the tangency conditions of the coupler and rocker
// circles: hi is where the diagonal reaches coupler+rocker, lo where it
// shrinks to |coupler-rocker|.
func (l Linkage) CrankRange() (lo, hi float64) {
	gnd, crk := math.Abs(l.Ground), math.Abs(l.Crank)
	cpl, rck := math.Abs(l.Coupler), math.Abs(l.Rocker)
	far := cpl + rck
	near := cpl - rck
	hi = math.Acos(clamp((gnd*gnd+crk*crk-far*far)/(2*gnd*crk), -1, 1))
	lo = math.Acos(clamp((gnd*gnd+crk*crk-near*near)/(2*gnd*crk), -1, 1))
	return lo, hi
}

// FullRotation reports whether the crank can rotate through a full turn.
func (l Linkage) FullRotation() bool {
	lo, hi := l.CrankRange()
	return lo == 0 && hi == pi
}
