package dimension

// Kind is the closed set of conventions a pressure or flux field can be in.
type Kind int

const (
	Unrecognized Kind = iota
	DynamicPressure
	KinematicPressure
	MassFlux
	VolumeFlux
)

var kindNames = [...]string{
	Unrecognized:      "unrecognized",
	DynamicPressure:   "dynamic pressure",
	KinematicPressure: "kinematic pressure",
	MassFlux:          "mass flux",
	VolumeFlux:        "volume flux",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Unrecognized]
	}
	return kindNames[k]
}

// Dimension returns the dimension a field of this kind carries.
// Unrecognized has no dimension and reports false.
func (k Kind) Dimension() (Dimension, bool) {
	switch k {
	case DynamicPressure:
		return DynamicPressureDim, true
	case KinematicPressure:
		return KinematicPressureDim, true
	case MassFlux:
		return MassFluxDim, true
	case VolumeFlux:
		return VolumeFluxDim, true
	case Unrecognized:
	}
	return Dimension{}, false
}

func (k Kind) IsPressure() bool {
	return k == DynamicPressure || k == KinematicPressure
}

func (k Kind) IsFlux() bool {
	return k == MassFlux || k == VolumeFlux
}

// Classify matches d exactly against the four known patterns.
func Classify(d Dimension) Kind {
	switch d {
	case DynamicPressureDim:
		return DynamicPressure
	case KinematicPressureDim:
		return KinematicPressure
	case MassFluxDim:
		return MassFlux
	case VolumeFluxDim:
		return VolumeFlux
	}
	return Unrecognized
}

// ClassifyPressure reports DynamicPressure, KinematicPressure or Unrecognized.
func ClassifyPressure(d Dimension) Kind {
	if k := Classify(d); k.IsPressure() {
		return k
	}
	return Unrecognized
}

// ClassifyFlux reports MassFlux, VolumeFlux or Unrecognized.
func ClassifyFlux(d Dimension) Kind {
	if k := Classify(d); k.IsFlux() {
		return k
	}
	return Unrecognized
}
