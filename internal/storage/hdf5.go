package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/fluxconv/internal/dimension"
	"github.com/san-kum/fluxconv/internal/field"
	"github.com/san-kum/fluxconv/internal/timesel"
	"github.com/scigolib/hdf5"
)

const (
	hdf5Dataset       = "/values"
	hdf5DimsAttribute = "dimensions"
	hdf5ClassAttr     = "class"
)

// HDF5Store keeps one file per field and time. The values live in a
// float64 dataset; dimensions are stored as num/den int32 pairs.
type HDF5Store struct {
	layout dirLayout
}

func NewHDF5Store(caseDir string) *HDF5Store {
	return &HDF5Store{layout: dirLayout{baseDir: caseDir, ext: ".h5"}}
}

func (s *HDF5Store) Times(ctx context.Context) ([]timesel.Instant, error) {
	return s.layout.times(ctx)
}

func (s *HDF5Store) ReadField(ctx context.Context, name string, t timesel.Instant) (*field.Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.layout.path(name, t)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(name, t)
		}
		return nil, err
	}

	f, err := hdf5.Open(path)
	if err != nil {
		return nil, corrupt(name, t, err)
	}
	defer f.Close()

	var ds *hdf5.Dataset
	f.Walk(func(p string, obj hdf5.Object) {
		d, ok := obj.(*hdf5.Dataset)
		if ok && (p == hdf5Dataset || "/"+strings.TrimPrefix(d.Name(), "/") == hdf5Dataset) {
			ds = d
		}
	})
	if ds == nil {
		return nil, corrupt(name, t, fmt.Errorf("dataset %s missing", hdf5Dataset))
	}

	values, err := ds.Read()
	if err != nil {
		return nil, corrupt(name, t, err)
	}

	rawDims, err := ds.ReadAttribute(hdf5DimsAttribute)
	if err != nil {
		return nil, corrupt(name, t, err)
	}
	pairs, ok := rawDims.([]int32)
	if !ok {
		return nil, corrupt(name, t, fmt.Errorf("dimensions attribute is %T", rawDims))
	}
	dims, err := dimension.Decode(pairs)
	if err != nil {
		return nil, corrupt(name, t, err)
	}

	rawClass, err := ds.ReadAttribute(hdf5ClassAttr)
	if err != nil {
		return nil, corrupt(name, t, err)
	}
	class, err := field.ParseClass(attributeString(rawClass))
	if err != nil {
		return nil, corrupt(name, t, err)
	}

	return &field.Field{
		Name:       name,
		Time:       t,
		Class:      class,
		Dimensions: dims,
		Values:     values,
	}, nil
}

func (s *HDF5Store) WriteField(ctx context.Context, f *field.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(f.Values) == 0 {
		return &FieldError{Field: f.Name, Time: f.Time, Wrapped: errors.New("hdf5 store cannot hold an empty field")}
	}
	if err := s.layout.prepare(f.Time); err != nil {
		return err
	}

	fw, err := hdf5.CreateForWrite(s.layout.path(f.Name, f.Time), hdf5.CreateTruncate)
	if err != nil {
		return err
	}

	if err := writeHDF5Dataset(fw, f); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}

func writeHDF5Dataset(fw *hdf5.FileWriter, f *field.Field) error {
	ds, err := fw.CreateDataset(hdf5Dataset, hdf5.Float64, []uint64{uint64(len(f.Values))})
	if err != nil {
		return err
	}
	if err := ds.Write(f.Values); err != nil {
		return err
	}
	if err := ds.WriteAttribute(hdf5DimsAttribute, f.Dimensions.Encode()); err != nil {
		return err
	}
	return ds.WriteAttribute(hdf5ClassAttr, string(f.Class))
}

func (s *HDF5Store) Close() error {
	return nil
}

func attributeString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimRight(s, "\x00 ")
	case []string:
		if len(s) > 0 {
			return strings.TrimRight(s[0], "\x00 ")
		}
	}
	return fmt.Sprint(v)
}
