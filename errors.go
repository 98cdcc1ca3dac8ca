package fourbar

import "errors"

// Errors reported by synthesis and position analysis. All are recoverable
// outcomes of invalid geometry or input, never process failures; callers
// match them with errors.Is.
var (
	// ErrPositionCount reports analytical synthesis called with other
	// than exactly three precision positions.
	ErrPositionCount = errors.New("fourbar: analytical synthesis takes exactly 3 precision positions")
	// ErrSingular reports a numerically singular synthesis system,
	// typically from duplicate crank angles.
	ErrSingular = errors.New("fourbar: singular synthesis system")
	// ErrInfeasible reports that no real four-bar linkage passes through
	// the requested precision positions.
	ErrInfeasible = errors.New("fourbar: precision positions are infeasible")
	// ErrUnreachable reports a crank angle at which the mechanism cannot
	// be assembled.
	ErrUnreachable = errors.New("fourbar: crank angle not reachable")
	// ErrNonPositiveLength reports a link length that must be a positive
	// real but is not.
	ErrNonPositiveLength = errors.New("fourbar: link length must be positive")
)
