package convert

import (
	"math"
	"testing"

	"github.com/san-kum/fluxconv/internal/dimension"
	"github.com/san-kum/fluxconv/internal/field"
	"github.com/san-kum/fluxconv/internal/timesel"
)

const tol = 1e-9

func closeTo(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestPressureRoundTrip(t *testing.T) {
	params := []Params{
		{RhoRef: 1.2, POffset: 101325},
		{RhoRef: 998.2, POffset: 0},
		{RhoRef: 1e-3, POffset: -50},
	}
	values := []float64{0, 1, -1, 4.1667, 101325, 1e6, -3.5e-7}

	for _, p := range params {
		for _, v := range values {
			got := ForwardPressure(InversePressure(v, p.RhoRef, p.POffset), p.RhoRef, p.POffset)
			if !closeTo(got, v, tol) {
				t.Errorf("rho=%g off=%g: forward(inverse(%g)) = %g", p.RhoRef, p.POffset, v, got)
			}
			got = InversePressure(ForwardPressure(v, p.RhoRef, p.POffset), p.RhoRef, p.POffset)
			if !closeTo(got, v, tol) {
				t.Errorf("rho=%g off=%g: inverse(forward(%g)) = %g", p.RhoRef, p.POffset, v, got)
			}
		}
	}
}

func TestFluxRoundTrip(t *testing.T) {
	for _, rho := range []float64{1.2, 998.2, 0.01} {
		for _, v := range []float64{0, 2.4, -7, 1e-12, 3e8} {
			if got := ForwardFlux(InverseFlux(v, rho), rho); !closeTo(got, v, tol) {
				t.Errorf("rho=%g: forward(inverse(%g)) = %g", rho, v, got)
			}
			if got := InverseFlux(ForwardFlux(v, rho), rho); !closeTo(got, v, tol) {
				t.Errorf("rho=%g: inverse(forward(%g)) = %g", rho, v, got)
			}
		}
	}
}

func testField(name string, class field.Class, dims dimension.Dimension, values ...float64) *field.Field {
	return &field.Field{
		Name:       name,
		Time:       timesel.FromValue(0),
		Class:      class,
		Dimensions: dims,
		Values:     values,
	}
}

func TestTransformScenarios(t *testing.T) {
	params := Params{RhoRef: 1.2, POffset: 101325}

	tests := []struct {
		name      string
		transform Transform
		in        *field.Field
		params    Params
		expected  []float64
		outName   string
		outDims   dimension.Dimension
	}{
		{
			name:      "dynamic to kinematic",
			transform: DynamicToKinematic,
			in:        testField("p", field.Volume, dimension.Pressure, 101325, 101330),
			params:    params,
			expected:  []float64{0, 4.1667},
			outName:   "rhop",
			outDims:   dimension.KinematicPressureDim,
		},
		{
			name:      "kinematic to dynamic",
			transform: KinematicToDynamic,
			in:        testField("p", field.Volume, dimension.KinematicPressureDim, 0, 4.1667),
			params:    params,
			expected:  []float64{101325, 101330},
			outName:   "rhop",
			outDims:   dimension.Pressure,
		},
		{
			name:      "mass to volume",
			transform: MassToVolume,
			in:        testField("phi", field.Surface, dimension.MassFluxDim, 2.4),
			params:    Params{RhoRef: 1.2},
			expected:  []float64{2.0},
			outName:   "rhophi",
			outDims:   dimension.VolumeFluxDim,
		},
		{
			name:      "volume to mass",
			transform: VolumeToMass,
			in:        testField("phi", field.Surface, dimension.VolumeFluxDim, 2.0),
			params:    Params{RhoRef: 1.2},
			expected:  []float64{2.4},
			outName:   "rhophi",
			outDims:   dimension.MassFluxDim,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.in.CloneValues()
			out := tt.transform.Apply(tt.in, tt.params)

			if out.Name != tt.outName {
				t.Errorf("expected name %s, got %s", tt.outName, out.Name)
			}
			if out.Dimensions != tt.outDims {
				t.Errorf("expected dimensions %s, got %s", tt.outDims, out.Dimensions)
			}
			if out.Class != tt.in.Class {
				t.Errorf("expected class %s, got %s", tt.in.Class, out.Class)
			}
			if len(out.Values) != len(tt.expected) {
				t.Fatalf("expected %d values, got %d", len(tt.expected), len(out.Values))
			}
			for i := range tt.expected {
				if math.Abs(out.Values[i]-tt.expected[i]) > 1e-3 {
					t.Errorf("value %d: expected %.4f, got %.4f", i, tt.expected[i], out.Values[i])
				}
			}
			for i := range before {
				if tt.in.Values[i] != before[i] {
					t.Error("input field was modified")
				}
			}
		})
	}
}

func TestTransformMatchesScalar(t *testing.T) {
	p := Params{RhoRef: 1.2, POffset: 101325}
	in := testField("p", field.Volume, dimension.Pressure, 101325, 101330, 99000)

	out := DynamicToKinematic.Apply(in, p)
	for i, v := range in.Values {
		if out.Values[i] != InversePressure(v, p.RhoRef, p.POffset) {
			t.Errorf("value %d differs from scalar transform", i)
		}
	}

	back := KinematicToDynamic.Apply(out, p)
	for i, v := range out.Values {
		if back.Values[i] != ForwardPressure(v, p.RhoRef, p.POffset) {
			t.Errorf("value %d differs from scalar transform", i)
		}
	}
}

func TestTransformOutputKinds(t *testing.T) {
	expected := map[Transform]dimension.Kind{
		DynamicToKinematic: dimension.KinematicPressure,
		KinematicToDynamic: dimension.DynamicPressure,
		MassToVolume:       dimension.VolumeFlux,
		VolumeToMass:       dimension.MassFlux,
	}
	for tr, kind := range expected {
		if tr.Output() != kind {
			t.Errorf("%s: expected %s, got %s", tr, kind, tr.Output())
		}
	}
}
