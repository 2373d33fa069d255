package convert_test

import (
	"context"
	"errors"

	"github.com/san-kum/fluxconv/internal/convert"
	"github.com/san-kum/fluxconv/internal/field"
	"github.com/san-kum/fluxconv/internal/storage"
	"github.com/san-kum/fluxconv/internal/timesel"
)

var errDiskFull = errors.New("disk full")

// memStore is an in-memory storage.Store that records every call.
type memStore struct {
	fields    map[string]*field.Field
	reads     []string
	writes    []*field.Field
	failWrite map[string]bool
}

var _ storage.Store = (*memStore)(nil)

func newMemStore(fields ...*field.Field) *memStore {
	s := &memStore{fields: make(map[string]*field.Field), failWrite: make(map[string]bool)}
	for _, f := range fields {
		s.fields[key(f.Name, f.Time)] = f
	}
	return s
}

func key(name string, t timesel.Instant) string {
	return t.Name + "/" + name
}

func (s *memStore) Times(context.Context) ([]timesel.Instant, error) {
	seen := make(map[string]bool)
	var out []timesel.Instant
	for _, f := range s.fields {
		if !seen[f.Time.Name] {
			seen[f.Time.Name] = true
			out = append(out, f.Time)
		}
	}
	timesel.Sort(out)
	return out, nil
}

func (s *memStore) ReadField(_ context.Context, name string, t timesel.Instant) (*field.Field, error) {
	s.reads = append(s.reads, name)
	f, ok := s.fields[key(name, t)]
	if !ok {
		return nil, &storage.FieldError{Field: name, Time: t, Wrapped: storage.ErrFieldNotFound}
	}
	return f, nil
}

func (s *memStore) WriteField(_ context.Context, f *field.Field) error {
	if s.failWrite[f.Name] {
		return errDiskFull
	}
	s.writes = append(s.writes, f)
	s.fields[key(f.Name, f.Time)] = f
	return nil
}

func (s *memStore) Close() error { return nil }

var _ convert.Reporter = (*recordingReporter)(nil)

type recordingReporter struct {
	read    []string
	results []convert.Result
}

func (r *recordingReporter) Reading(_ convert.Quantity, name string, _ timesel.Instant) {
	r.read = append(r.read, name)
}

func (r *recordingReporter) Result(res convert.Result) {
	r.results = append(r.results, res)
}
