package convert

import (
	"github.com/san-kum/fluxconv/internal/dimension"
)

type Outcome int

const (
	// Converted means a derived field was produced.
	Converted Outcome = iota
	// NoOp means the field already is in the requested convention.
	NoOp
	// Unrecognized means the field dimension matches no known pattern.
	Unrecognized
)

func (o Outcome) String() string {
	switch o {
	case Converted:
		return "converted"
	case NoOp:
		return "no-op"
	}
	return "unrecognized"
}

// Action is the decision taken for one field. Transform is only
// meaningful when Outcome is Converted.
type Action struct {
	Outcome   Outcome
	Transform Transform
}

func convertWith(t Transform) Action {
	return Action{Outcome: Converted, Transform: t}
}

// Plan decides what to do with a field of the given kind. Forward turns
// kinematic pressure and volume flux into their dynamic counterparts,
// Inverse does the opposite; a field already in the target convention is
// left alone.
func Plan(kind dimension.Kind, dir Direction) Action {
	switch kind {
	case dimension.DynamicPressure:
		if dir == Inverse {
			return convertWith(DynamicToKinematic)
		}
		return Action{Outcome: NoOp}
	case dimension.KinematicPressure:
		if dir == Forward {
			return convertWith(KinematicToDynamic)
		}
		return Action{Outcome: NoOp}
	case dimension.MassFlux:
		if dir == Inverse {
			return convertWith(MassToVolume)
		}
		return Action{Outcome: NoOp}
	case dimension.VolumeFlux:
		if dir == Forward {
			return convertWith(VolumeToMass)
		}
		return Action{Outcome: NoOp}
	case dimension.Unrecognized:
	}
	return Action{Outcome: Unrecognized}
}
