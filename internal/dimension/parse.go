package dimension

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidDimension = errors.New("dimension: invalid dimension set")

// maxTerm bounds the numerator and denominator of a stored exponent.
const maxTerm = 1000

// Parse reads the form produced by Dimension.String. Five entries are
// read as mass, length, time, temperature and moles, leaving current and
// luminous intensity at zero.
func Parse(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return Dimension{}, fmt.Errorf("%w: %q is not bracketed", ErrInvalidDimension, s)
	}
	parts := strings.Fields(s[1 : len(s)-1])
	if len(parts) != 5 && len(parts) != NumBase {
		return Dimension{}, fmt.Errorf("%w: %q has %d entries, want 5 or %d",
			ErrInvalidDimension, s, len(parts), NumBase)
	}

	var d Dimension
	for i, p := range parts {
		e, err := parseExponent(p)
		if err != nil {
			return Dimension{}, fmt.Errorf("%w: entry %d of %q: %v", ErrInvalidDimension, i, s, err)
		}
		d.exp[i] = e
	}
	return d, nil
}

func parseExponent(s string) (Exponent, error) {
	num, den, isRat := strings.Cut(s, "/")
	n, err := strconv.ParseInt(num, 10, 32)
	if err != nil {
		return Exponent{}, err
	}
	d := int64(1)
	if isRat {
		if d, err = strconv.ParseInt(den, 10, 32); err != nil {
			return Exponent{}, err
		}
	}
	if err := checkTerms(int32(n), int32(d)); err != nil {
		return Exponent{}, err
	}
	return Rat(int32(n), int32(d)), nil
}

func checkTerms(n, d int32) error {
	if d == 0 {
		return errors.New("zero denominator")
	}
	if n < -maxTerm || n > maxTerm || d < -maxTerm || d > maxTerm {
		return fmt.Errorf("%d/%d is outside +-%d", n, d, maxTerm)
	}
	return nil
}

// Encode flattens d into numerator/denominator pairs for binary storage.
func (d Dimension) Encode() []int32 {
	out := make([]int32, 0, 2*NumBase)
	for _, e := range d.exp {
		out = append(out, e.Num(), e.Den())
	}
	return out
}

// Decode is the inverse of Encode.
func Decode(pairs []int32) (Dimension, error) {
	if len(pairs) != 2*NumBase {
		return Dimension{}, fmt.Errorf("%w: %d encoded values, want %d", ErrInvalidDimension, len(pairs), 2*NumBase)
	}
	var d Dimension
	for i := 0; i < NumBase; i++ {
		if err := checkTerms(pairs[2*i], pairs[2*i+1]); err != nil {
			return Dimension{}, fmt.Errorf("%w: entry %d: %v", ErrInvalidDimension, i, err)
		}
		d.exp[i] = Rat(pairs[2*i], pairs[2*i+1])
	}
	return d, nil
}

// MarshalText makes Dimension usable directly in yaml and json documents.
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Dimension) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
