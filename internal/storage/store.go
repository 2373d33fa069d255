package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/fluxconv/internal/field"
	"github.com/san-kum/fluxconv/internal/timesel"
)

var (
	// ErrFieldNotFound indicates the field is absent at the requested time.
	ErrFieldNotFound = errors.New("storage: field not found")

	// ErrUnknownFormat indicates an unsupported storage format name.
	ErrUnknownFormat = errors.New("storage: unknown format")

	// ErrCorruptField indicates a stored field that cannot be decoded.
	ErrCorruptField = errors.New("storage: corrupt field")
)

// FieldError wraps an error with the field and time it concerns.
type FieldError struct {
	Field   string
	Time    timesel.Instant
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s at time %s: %v", e.Field, e.Time, e.Wrapped)
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}

type Store interface {
	// Times lists the instances present in the case, sorted.
	Times(ctx context.Context) ([]timesel.Instant, error)
	ReadField(ctx context.Context, name string, t timesel.Instant) (*field.Field, error)
	// WriteField persists f under its own name at f.Time.
	WriteField(ctx context.Context, f *field.Field) error
	Close() error
}

type Format string

const (
	FormatYAML   Format = "yaml"
	FormatHDF5   Format = "hdf5"
	FormatSQLite Format = "sqlite"
)

func Formats() []Format {
	return []Format{FormatYAML, FormatHDF5, FormatSQLite}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Open returns the store for caseDir in the given format.
func Open(format Format, caseDir string) (Store, error) {
	switch format {
	case FormatYAML:
		return NewYAMLStore(caseDir), nil
	case FormatHDF5:
		return NewHDF5Store(caseDir), nil
	case FormatSQLite:
		return NewSQLiteStore(caseDir)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func notFound(name string, t timesel.Instant) error {
	return &FieldError{Field: name, Time: t, Wrapped: ErrFieldNotFound}
}

func corrupt(name string, t timesel.Instant, err error) error {
	return &FieldError{Field: name, Time: t, Wrapped: fmt.Errorf("%w: %v", ErrCorruptField, err)}
}
