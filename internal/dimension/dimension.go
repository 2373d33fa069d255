package dimension

import (
	"math"
	"strconv"
	"strings"
)

// Base unit positions inside a Dimension.
const (
	MassIdx = iota
	LengthIdx
	TimeIdx
	TemperatureIdx
	MolesIdx
	CurrentIdx
	LuminousIdx

	NumBase
)

// Exponent is a normalized rational number. The denominator is stored
// minus one so that the zero value is 0/1 and == compares exactly.
type Exponent struct {
	num   int32
	denM1 int32
}

func Int(n int32) Exponent {
	return Exponent{num: n}
}

// Rat returns the normalized exponent n/d. It panics if d is zero.
func Rat(n, d int32) Exponent {
	return rat64(int64(n), int64(d))
}

// rat64 normalizes in 64 bits and panics when the reduced fraction does
// not fit an int32 numerator and denominator.
func rat64(n, d int64) Exponent {
	if d == 0 {
		panic("dimension: zero denominator")
	}
	if d < 0 {
		n, d = -n, -d
	}
	if n == 0 {
		return Exponent{}
	}
	g := gcd(abs(n), d)
	n, d = n/g, d/g
	if n < math.MinInt32 || n > math.MaxInt32 || d > math.MaxInt32 {
		panic("dimension: exponent overflows int32")
	}
	return Exponent{num: int32(n), denM1: int32(d - 1)}
}

func (e Exponent) Num() int32 { return e.num }

func (e Exponent) Den() int32 { return e.denM1 + 1 }

func (e Exponent) IsZero() bool { return e.num == 0 }

func (e Exponent) Add(o Exponent) Exponent {
	n := int64(e.num)*int64(o.Den()) + int64(o.num)*int64(e.Den())
	return rat64(n, int64(e.Den())*int64(o.Den()))
}

func (e Exponent) Neg() Exponent {
	return Exponent{num: -e.num, denM1: e.denM1}
}

func (e Exponent) Mul(o Exponent) Exponent {
	return rat64(int64(e.num)*int64(o.num), int64(e.Den())*int64(o.Den()))
}

func (e Exponent) Float() float64 {
	return float64(e.num) / float64(e.Den())
}

func (e Exponent) String() string {
	if e.Den() == 1 {
		return strconv.Itoa(int(e.num))
	}
	return strconv.Itoa(int(e.num)) + "/" + strconv.Itoa(int(e.Den()))
}

// Dimension is a tuple of exponents over mass, length, time, temperature,
// moles, current and luminous intensity, in that order.
type Dimension struct {
	exp [NumBase]Exponent
}

// New builds a dimension from leading exponents; missing ones are zero.
func New(exps ...Exponent) Dimension {
	var d Dimension
	for i := 0; i < len(exps) && i < NumBase; i++ {
		d.exp[i] = exps[i]
	}
	return d
}

// Of builds a dimension from integer exponents.
func Of(exps ...int32) Dimension {
	var d Dimension
	for i := 0; i < len(exps) && i < NumBase; i++ {
		d.exp[i] = Int(exps[i])
	}
	return d
}

func (d Dimension) Exponent(i int) Exponent {
	return d.exp[i]
}

func (d Dimension) Mul(o Dimension) Dimension {
	var r Dimension
	for i := range d.exp {
		r.exp[i] = d.exp[i].Add(o.exp[i])
	}
	return r
}

func (d Dimension) Div(o Dimension) Dimension {
	var r Dimension
	for i := range d.exp {
		r.exp[i] = d.exp[i].Add(o.exp[i].Neg())
	}
	return r
}

func (d Dimension) Pow(p Exponent) Dimension {
	var r Dimension
	for i := range d.exp {
		r.exp[i] = d.exp[i].Mul(p)
	}
	return r
}

func (d Dimension) IsDimless() bool {
	return d == Dimless
}

// String renders the dimension as "[1 -1 -2 0 0 0 0]", the form Parse reads.
func (d Dimension) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range d.exp {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
