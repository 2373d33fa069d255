package convert

import (
	"fmt"
	"math"
)

type Params struct {
	RhoRef  float64
	POffset float64
}

// NewParams validates the run parameters. A nil rhoRef means the caller
// never supplied one.
func NewParams(rhoRef *float64, poffset float64) (Params, error) {
	if rhoRef == nil {
		return Params{}, ErrMissingRhoRef
	}
	p := Params{RhoRef: *rhoRef, POffset: poffset}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func (p Params) Validate() error {
	if !(p.RhoRef > 0) || math.IsInf(p.RhoRef, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRhoRef, p.RhoRef)
	}
	if math.IsNaN(p.POffset) || math.IsInf(p.POffset, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidOffset, p.POffset)
	}
	return nil
}

type Direction int

const (
	// Forward converts kinematic fields into dynamic ones.
	Forward Direction = iota
	// Inverse converts dynamic fields back into kinematic ones.
	Inverse
)

func DirectionOf(inverse bool) Direction {
	if inverse {
		return Inverse
	}
	return Forward
}

func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}
	return "forward"
}
