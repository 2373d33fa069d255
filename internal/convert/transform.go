package convert

import (
	"github.com/san-kum/fluxconv/internal/dimension"
	"github.com/san-kum/fluxconv/internal/field"
	"gonum.org/v1/gonum/floats"
)

// OutputPrefix is prepended to the name of every derived field.
const OutputPrefix = "rho"

func InversePressure(v, rhoRef, poffset float64) float64 {
	return (v - poffset) / rhoRef
}

func ForwardPressure(v, rhoRef, poffset float64) float64 {
	return rhoRef*v + poffset
}

func InverseFlux(v, rhoRef float64) float64 {
	return v / rhoRef
}

func ForwardFlux(v, rhoRef float64) float64 {
	return rhoRef * v
}

// Transform is one of the four elementwise conversions.
type Transform int

const (
	DynamicToKinematic Transform = iota
	KinematicToDynamic
	MassToVolume
	VolumeToMass
)

func (t Transform) String() string {
	switch t {
	case DynamicToKinematic:
		return "dynamic pressure to kinematic pressure"
	case KinematicToDynamic:
		return "kinematic pressure to dynamic pressure"
	case MassToVolume:
		return "mass flux to volume flux"
	case VolumeToMass:
		return "volume flux to mass flux"
	}
	return "unknown transform"
}

// Output is the kind of field the transform produces.
func (t Transform) Output() dimension.Kind {
	switch t {
	case DynamicToKinematic:
		return dimension.KinematicPressure
	case KinematicToDynamic:
		return dimension.DynamicPressure
	case MassToVolume:
		return dimension.VolumeFlux
	case VolumeToMass:
		return dimension.MassFlux
	}
	return dimension.Unrecognized
}

// Apply builds the derived field "rho"+name. The input is not modified.
func (t Transform) Apply(f *field.Field, p Params) *field.Field {
	values := f.CloneValues()
	switch t {
	case DynamicToKinematic:
		floats.AddConst(-p.POffset, values)
		for i := range values {
			values[i] /= p.RhoRef
		}
	case KinematicToDynamic:
		floats.Scale(p.RhoRef, values)
		floats.AddConst(p.POffset, values)
	case MassToVolume:
		for i := range values {
			values[i] /= p.RhoRef
		}
	case VolumeToMass:
		floats.Scale(p.RhoRef, values)
	}

	dims, _ := t.Output().Dimension()
	return f.Derive(OutputPrefix+f.Name, dims, values)
}
