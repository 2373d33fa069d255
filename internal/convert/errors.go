package convert

import "errors"

var (
	// ErrMissingRhoRef indicates no reference density was supplied.
	ErrMissingRhoRef = errors.New("convert: missing reference density")

	// ErrInvalidRhoRef indicates a reference density that is not positive and finite.
	ErrInvalidRhoRef = errors.New("convert: reference density must be positive and finite")

	// ErrInvalidOffset indicates a pressure offset that is not finite.
	ErrInvalidOffset = errors.New("convert: pressure offset must be finite")
)
