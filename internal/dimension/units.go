package dimension

var (
	Dimless = Dimension{}

	Mass              = Of(1)
	Length            = Of(0, 1)
	Time              = Of(0, 0, 1)
	Temperature       = Of(0, 0, 0, 1)
	Moles             = Of(0, 0, 0, 0, 1)
	Current           = Of(0, 0, 0, 0, 0, 1)
	LuminousIntensity = Of(0, 0, 0, 0, 0, 0, 1)

	Area     = Length.Mul(Length)
	Volume   = Area.Mul(Length)
	Velocity = Length.Div(Time)
	Density  = Mass.Div(Volume)
	Force    = Mass.Mul(Velocity).Div(Time)
	Pressure = Force.Div(Area)

	DynamicPressureDim = Pressure
	// KinematicPressureDim is pressure per unit density, m2/s2.
	KinematicPressureDim = Pressure.Div(Density)
	MassFluxDim          = Mass.Div(Time)
	VolumeFluxDim        = Volume.Div(Time)
)
