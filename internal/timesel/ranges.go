package timesel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Range is an inclusive time interval. A single value is a Range with
// equal bounds; open ends use infinities.
type Range struct {
	Lo, Hi float64
}

func (r Range) Contains(in Instant) bool {
	if r.Lo == r.Hi {
		return in.Equal(r.Lo)
	}
	return (in.Value >= r.Lo || in.Equal(r.Lo)) && (in.Value <= r.Hi || in.Equal(r.Hi))
}

func (r Range) String() string {
	if r.Lo == r.Hi {
		return formatBound(r.Lo)
	}
	lo, hi := "", ""
	if !math.IsInf(r.Lo, -1) {
		lo = formatBound(r.Lo)
	}
	if !math.IsInf(r.Hi, 1) {
		hi = formatBound(r.Hi)
	}
	return lo + ":" + hi
}

type Ranges []Range

func (rs Ranges) Contains(in Instant) bool {
	for _, r := range rs {
		if r.Contains(in) {
			return true
		}
	}
	return false
}

func (rs Ranges) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// ParseRanges reads a comma or space separated list of values and
// ranges: "0.5", "1:2", ":1", "2:".
func ParseRanges(s string) (Ranges, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("timesel: empty time specification %q", s)
	}

	out := make(Ranges, 0, len(fields))
	for _, f := range fields {
		r, err := parseRange(f)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseRange(s string) (Range, error) {
	lo, hi, isRange := strings.Cut(s, ":")
	if !isRange {
		v, err := parseBound(s)
		if err != nil {
			return Range{}, err
		}
		return Range{Lo: v, Hi: v}, nil
	}
	if lo == "" && hi == "" {
		return Range{}, fmt.Errorf("timesel: range %q has no bounds", s)
	}

	r := Range{Lo: math.Inf(-1), Hi: math.Inf(1)}
	var err error
	if lo != "" {
		if r.Lo, err = parseBound(lo); err != nil {
			return Range{}, err
		}
	}
	if hi != "" {
		if r.Hi, err = parseBound(hi); err != nil {
			return Range{}, err
		}
	}
	if r.Lo > r.Hi {
		return Range{}, fmt.Errorf("timesel: range %q is reversed", s)
	}
	return r, nil
}

func parseBound(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("timesel: invalid time %q", s)
	}
	return v, nil
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var _ pflag.Value = RangesValue{}

// RangesValue adapts Ranges to a pflag.Value so --time can be given more
// than once.
type RangesValue struct {
	Ranges *Ranges
}

func (v RangesValue) String() string {
	if v.Ranges == nil {
		return ""
	}
	return v.Ranges.String()
}

func (v RangesValue) Set(s string) error {
	rs, err := ParseRanges(s)
	if err != nil {
		return err
	}
	*v.Ranges = append(*v.Ranges, rs...)
	return nil
}

func (v RangesValue) Type() string {
	return "ranges"
}
