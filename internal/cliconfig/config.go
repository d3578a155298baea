// Package cliconfig holds the configuration shared by the hankel command-line
// tools: transform parameters loaded from YAML and overridden by flags, and
// the zap logger.
package cliconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tphakala/go-hankel"
	"gopkg.in/yaml.v3"
)

const configFileMode = 0o644

// Params are the transform parameters a CLI run can set.
type Params struct {
	Interval float64 `yaml:"interval"`
	Order    float64 `yaml:"order"`
	Scale    float64 `yaml:"scale"`
	Parallel bool    `yaml:"parallel"`
}

// Default returns the library defaults.
func Default() Params {
	cfg := hankel.DefaultConfig()
	return Params{
		Interval: cfg.Interval,
		Order:    cfg.Order,
		Scale:    cfg.Scale,
		Parallel: cfg.EnableParallel,
	}
}

// Load reads params from a YAML file. Keys missing from the file keep their
// values from base; unknown keys are an error.
func Load(path string, base Params) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("failed to read config: %w", err)
	}

	p := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return p, nil
}

// Save writes params as YAML.
func (p Params) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, configFileMode); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Config converts params into a validated transform config along axis.
func (p Params) Config(axis int) (hankel.Config, error) {
	cfg := hankel.Config{
		Interval:       p.Interval,
		Order:          p.Order,
		Axis:           axis,
		Scale:          p.Scale,
		EnableParallel: p.Parallel,
	}
	if err := cfg.Validate(); err != nil {
		return hankel.Config{}, err
	}
	return cfg, nil
}
