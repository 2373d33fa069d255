package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/san-kum/fluxconv/internal/dimension"
	"github.com/san-kum/fluxconv/internal/field"
	"github.com/san-kum/fluxconv/internal/timesel"
	"gopkg.in/yaml.v3"
)

type yamlField struct {
	Name       string    `yaml:"name"`
	Class      string    `yaml:"class"`
	Dimensions string    `yaml:"dimensions"`
	Values     []float64 `yaml:"values,flow"`
}

type YAMLStore struct {
	layout dirLayout
}

func NewYAMLStore(caseDir string) *YAMLStore {
	return &YAMLStore{layout: dirLayout{baseDir: caseDir, ext: ".yaml"}}
}

func (s *YAMLStore) Times(ctx context.Context) ([]timesel.Instant, error) {
	return s.layout.times(ctx)
}

func (s *YAMLStore) ReadField(ctx context.Context, name string, t timesel.Instant) (*field.Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.layout.path(name, t))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(name, t)
		}
		return nil, err
	}

	var doc yamlField
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, corrupt(name, t, err)
	}

	dims, err := dimension.Parse(doc.Dimensions)
	if err != nil {
		return nil, corrupt(name, t, err)
	}
	class, err := field.ParseClass(doc.Class)
	if err != nil {
		return nil, corrupt(name, t, err)
	}
	if doc.Name != "" && doc.Name != name {
		return nil, corrupt(name, t, fmt.Errorf("document names field %q", doc.Name))
	}

	return &field.Field{
		Name:       name,
		Time:       t,
		Class:      class,
		Dimensions: dims,
		Values:     doc.Values,
	}, nil
}

func (s *YAMLStore) WriteField(ctx context.Context, f *field.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.layout.prepare(f.Time); err != nil {
		return err
	}

	values := f.Values
	if values == nil {
		values = []float64{}
	}
	data, err := yaml.Marshal(yamlField{
		Name:       f.Name,
		Class:      string(f.Class),
		Dimensions: f.Dimensions.String(),
		Values:     values,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(s.layout.path(f.Name, f.Time), data, 0644)
}

func (s *YAMLStore) Close() error {
	return nil
}
