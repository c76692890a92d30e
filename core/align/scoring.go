package align

import (
	"errors"
	"fmt"
)

// ErrBadScoring is returned when scoring parameters are inconsistent.
var ErrBadScoring = errors.New("invalid scoring parameters")

// Scoring is an identity scoring scheme with affine gap costs.
// GapOpen is charged for the first position of a gap run, GapExtend for
// every following position of the same run.
type Scoring struct {
	Match     float64
	Mismatch  float64
	GapOpen   float64
	GapExtend float64
}

// DefaultScoring is +1 match, -0.5 mismatch, -10 gap open, free extension.
var DefaultScoring = Scoring{
	Match:     1,
	Mismatch:  -0.5,
	GapOpen:   -10,
	GapExtend: 0,
}

// NewScoring validates and returns a Scoring.
func NewScoring(match, mismatch, gapOpen, gapExtend float64) (Scoring, error) {
	sc := Scoring{Match: match, Mismatch: mismatch, GapOpen: gapOpen, GapExtend: gapExtend}
	return sc, sc.Validate()
}

// Validate checks that rewards and penalties have sensible signs.
func (s Scoring) Validate() error {
	switch {
	case s.Match <= 0:
		return fmt.Errorf("%w: match score must be > 0 (got %g)", ErrBadScoring, s.Match)
	case s.Mismatch > s.Match:
		return fmt.Errorf("%w: mismatch score %g exceeds match score %g", ErrBadScoring, s.Mismatch, s.Match)
	case s.GapOpen > 0:
		return fmt.Errorf("%w: gap open must be <= 0 (got %g)", ErrBadScoring, s.GapOpen)
	case s.GapExtend > 0:
		return fmt.Errorf("%w: gap extend must be <= 0 (got %g)", ErrBadScoring, s.GapExtend)
	}
	return nil
}

// Pair scores aligning residue a against residue b.
func (s Scoring) Pair(a, b byte) float64 {
	if a == b {
		return s.Match
	}
	return s.Mismatch
}

// Gap returns the cost of one gap position.
func (s Scoring) Gap(extending bool) float64 {
	if extending {
		return s.GapExtend
	}
	return s.GapOpen
}

func (s Scoring) String() string {
	return fmt.Sprintf("match=%g mismatch=%g gap-open=%g gap-extend=%g",
		s.Match, s.Mismatch, s.GapOpen, s.GapExtend)
}
