// Package sweep evaluates a four-bar linkage over a range of crank
// angles, owning the branch-continuity state of one sweep session.
package sweep

import (
	"errors"
	"fmt"
	"io"

	"github.com/soypat/fourbar"
)

// ErrConfig reports an invalid sweep configuration.
var ErrConfig = errors.New("sweep: invalid configuration")

// Config describes one sweep of the crank.
type Config struct {
	// Start and End are crank angles in radians. End below Start sweeps
	// in reverse.
	Start, End float64
	// Steps is the number of evenly spaced crank angles evaluated,
	// endpoints included. At least 2.
	Steps int
	// Mode selects the assembly branch. ModeNearest tracks the branch
	// nearest the previous frame; seed it with Prime to start a sweep on
	// the crossed branch.
	Mode fourbar.Mode
}

// Sweeper pages the poses of one sweep session. It owns the continuity
// state of that session exclusively and is not safe for concurrent use;
// hosts driving a sweep from several goroutines must serialize access.
type Sweeper struct {
	linkage fourbar.Linkage
	cfg     Config
	next    int
	prev    float64
	primed  bool
	skipped int
}

// New returns a Sweeper over the linkage. The linkage must have physical
// (positive) link lengths; sweep mirrored linkages through the Linkage
// kinematic methods directly.
func New(l fourbar.Linkage, cfg Config) (*Sweeper, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if cfg.Steps < 2 {
		return nil, fmt.Errorf("%w: Steps=%d, need at least 2", ErrConfig, cfg.Steps)
	}
	switch cfg.Mode {
	case fourbar.ModeOpen, fourbar.ModeClosed, fourbar.ModeNearest:
	default:
		return nil, fmt.Errorf("%w: unknown assembly mode %d", ErrConfig, int(cfg.Mode))
	}
	return &Sweeper{linkage: l, cfg: cfg}, nil
}

// ReadPoses fills dst with consecutive poses of the sweep. It returns the
// number of poses written and io.EOF once the sweep is exhausted. Crank
// angles at which the mechanism cannot assemble are skipped and tallied
// in Skipped; they never update the continuity state.
func (s *Sweeper) ReadPoses(dst []fourbar.Pose) (int, error) {
	if len(dst) == 0 {
		panic("cannot read into empty pose slice")
	}
	n := 0
	for n < len(dst) {
		if s.next >= s.cfg.Steps {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		theta := s.theta(s.next)
		s.next++
		pose, err := s.at(theta)
		if err != nil {
			if errors.Is(err, fourbar.ErrUnreachable) {
				s.skipped++
				continue
			}
			return n, err
		}
		dst[n] = pose
		n++
	}
	return n, nil
}

// Prime seeds the continuity state with a rocker angle in radians, as if
// it were the previously resolved frame. Priming lets a ModeNearest sweep
// start on the crossed branch instead of the open-branch default.
func (s *Sweeper) Prime(phi float64) {
	s.prev = phi
	s.primed = true
}

// Reset rewinds the sweep and clears the continuity state and the skip
// tally. This is the explicit session reset: changing assembly mode or
// re-synthesizing means starting a new sweep.
func (s *Sweeper) Reset() {
	s.next = 0
	s.prev = 0
	s.primed = false
	s.skipped = 0
}

// Skipped returns how many crank angles have been dropped as unreachable
// so far.
func (s *Sweeper) Skipped() int {
	return s.skipped
}

func (s *Sweeper) theta(i int) float64 {
	return s.cfg.Start + (s.cfg.End-s.cfg.Start)*float64(i)/float64(s.cfg.Steps-1)
}

func (s *Sweeper) at(theta float64) (fourbar.Pose, error) {
	var pose fourbar.Pose
	var err error
	if s.cfg.Mode == fourbar.ModeNearest && s.primed {
		pose, err = s.linkage.AtNear(theta, s.prev)
	} else {
		pose, err = s.linkage.At(theta, s.cfg.Mode)
	}
	if err != nil {
		return fourbar.Pose{}, err
	}
	if s.cfg.Mode == fourbar.ModeNearest {
		s.prev = pose.Phi
		s.primed = true
	}
	return pose, nil
}

// All runs the sweep to completion and returns every pose read. It does
// not return io.EOF.
func All(s *Sweeper) ([]fourbar.Pose, error) {
	var err error
	var n int
	result := make([]fourbar.Pose, 0, s.cfg.Steps)
	buf := make([]fourbar.Pose, 64)
	for {
		n, err = s.ReadPoses(buf)
		if err != nil {
			break
		}
		result = append(result, buf[:n]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
