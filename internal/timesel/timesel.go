// Package timesel picks the single snapshot time a conversion runs on.
package timesel

import (
	"errors"
	"math"
	"sort"
	"strconv"
)

// ConstantName is the instance holding time-invariant data.
const ConstantName = "constant"

const tolerance = 1e-9

var ErrNoTimes = errors.New("timesel: no times selected")

type Instant struct {
	Value float64
	Name  string
}

// ParseInstant reads a time directory name such as "0", "0.005" or "constant".
func ParseInstant(name string) (Instant, bool) {
	if name == ConstantName {
		return Instant{Value: math.Inf(-1), Name: name}, true
	}
	v, err := strconv.ParseFloat(name, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Instant{}, false
	}
	return Instant{Value: v, Name: name}, true
}

func FromValue(v float64) Instant {
	return Instant{Value: v, Name: strconv.FormatFloat(v, 'g', -1, 64)}
}

func (i Instant) IsConstant() bool {
	return i.Name == ConstantName
}

func (i Instant) String() string {
	return i.Name
}

// Equal compares instant values with a relative tolerance.
func (i Instant) Equal(v float64) bool {
	return math.Abs(i.Value-v) <= tolerance*math.Max(1, math.Abs(v))
}

// Sort orders a series by value; constant sorts first.
func Sort(series []Instant) {
	sort.SliceStable(series, func(a, b int) bool {
		return series[a].Value < series[b].Value
	})
}

type Options struct {
	Ranges   Ranges
	Latest   bool
	NoZero   bool
	Constant bool
}

func (o Options) IsZero() bool {
	return len(o.Ranges) == 0 && !o.Latest && !o.NoZero && !o.Constant
}

// Selected returns every instant of series that opts keeps, in order.
// The series must already be sorted.
func Selected(series []Instant, opts Options) []Instant {
	if opts.IsZero() {
		for _, in := range series {
			if !in.IsConstant() {
				return []Instant{in}
			}
		}
		return nil
	}

	keep := make([]bool, len(series))
	for idx, in := range series {
		if in.IsConstant() {
			keep[idx] = opts.Constant
			continue
		}
		keep[idx] = len(opts.Ranges) == 0 || opts.Ranges.Contains(in)
	}

	if opts.Latest {
		last := -1
		for idx, in := range series {
			if !in.IsConstant() {
				last = idx
				keep[idx] = false
			}
		}
		if last >= 0 {
			keep[last] = true
		}
	}

	if opts.NoZero {
		for idx, in := range series {
			if !in.IsConstant() && in.Equal(0) {
				keep[idx] = false
			}
		}
	}

	out := make([]Instant, 0, len(series))
	for idx, in := range series {
		if keep[idx] {
			out = append(out, in)
		}
	}
	return out
}

// Select picks exactly one instant: the first one kept by opts, or the
// first time of the series when no option is set.
func Select(series []Instant, opts Options) (Instant, error) {
	sorted := make([]Instant, len(series))
	copy(sorted, series)
	Sort(sorted)

	selected := Selected(sorted, opts)
	if len(selected) == 0 {
		return Instant{}, ErrNoTimes
	}
	return selected[0], nil
}
