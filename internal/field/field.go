// Package field holds the scalar field snapshots read from and written to
// a case store.
package field

import (
	"fmt"

	"github.com/san-kum/fluxconv/internal/dimension"
	"github.com/san-kum/fluxconv/internal/timesel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Class tells where the values of a field live on the mesh.
type Class string

const (
	// Volume fields hold one value per cell, like p.
	Volume Class = "volScalarField"
	// Surface fields hold one value per face, like phi.
	Surface Class = "surfaceScalarField"
)

func ParseClass(s string) (Class, error) {
	switch Class(s) {
	case Volume, Surface:
		return Class(s), nil
	}
	return "", fmt.Errorf("field: unknown class %q", s)
}

type Field struct {
	Name       string
	Time       timesel.Instant
	Class      Class
	Dimensions dimension.Dimension
	Values     []float64
}

func (f *Field) Len() int {
	return len(f.Values)
}

// Derive builds a new field at the same time and class. The values slice
// is owned by the result.
func (f *Field) Derive(name string, dims dimension.Dimension, values []float64) *Field {
	return &Field{
		Name:       name,
		Time:       f.Time,
		Class:      f.Class,
		Dimensions: dims,
		Values:     values,
	}
}

// CloneValues returns a copy of the values that is safe to modify.
func (f *Field) CloneValues() []float64 {
	c := make([]float64, len(f.Values))
	copy(c, f.Values)
	return c
}

type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

func (f *Field) Summary() Summary {
	if len(f.Values) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(f.Values, nil)
	if len(f.Values) == 1 {
		std = 0
	}
	return Summary{
		Count:  len(f.Values),
		Min:    floats.Min(f.Values),
		Max:    floats.Max(f.Values),
		Mean:   mean,
		StdDev: std,
	}
}

func (f *Field) String() string {
	return fmt.Sprintf("%s %s %s (%d values)", f.Class, f.Name, f.Dimensions, len(f.Values))
}
