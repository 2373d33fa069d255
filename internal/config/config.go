package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCase     = "."
	DefaultFormat   = "yaml"
	DefaultPressure = "p"
	DefaultFlux     = "phi"
)

type Config struct {
	Case    string       `yaml:"case" toml:"case"`
	Format  string       `yaml:"format" toml:"format"`
	RhoRef  *float64     `yaml:"rho_ref,omitempty" toml:"rho_ref,omitempty"`
	POffset float64      `yaml:"poffset" toml:"poffset"`
	Inverse bool         `yaml:"inverse" toml:"inverse"`
	Fluid   string       `yaml:"fluid,omitempty" toml:"fluid,omitempty"`
	Fields  FieldsConfig `yaml:"fields" toml:"fields"`
	Time    TimeConfig   `yaml:"time" toml:"time"`
	Debug   bool         `yaml:"debug" toml:"debug"`
}

type FieldsConfig struct {
	Pressure string `yaml:"pressure" toml:"pressure"`
	Flux     string `yaml:"flux" toml:"flux"`
}

type TimeConfig struct {
	Select   string `yaml:"select,omitempty" toml:"select,omitempty"`
	Latest   bool   `yaml:"latest" toml:"latest"`
	NoZero   bool   `yaml:"no_zero" toml:"no_zero"`
	Constant bool   `yaml:"constant" toml:"constant"`
}

func DefaultConfig() *Config {
	return &Config{
		Case:   DefaultCase,
		Format: DefaultFormat,
		Fields: FieldsConfig{
			Pressure: DefaultPressure,
			Flux:     DefaultFlux,
		},
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a yaml config, or TOML when the file ends in .toml. Keys
// missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	var err error
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReferenceDensity returns the density set in the file, falling back to
// the fluid preset. It returns nil when neither is set.
func (c *Config) ReferenceDensity() (*float64, error) {
	if c.RhoRef != nil {
		v := *c.RhoRef
		return &v, nil
	}
	if c.Fluid == "" {
		return nil, nil
	}
	fluid, ok := GetFluid(c.Fluid)
	if !ok {
		return nil, fmt.Errorf("unknown fluid: %s (available: %v)", c.Fluid, ListFluids())
	}
	v := fluid.RhoRef
	return &v, nil
}
