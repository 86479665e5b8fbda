// Package config loads solver settings from YAML.
//
// Example file:
//
//	tolerance: 1e-5
//	step_target: -10
//	max_iterations: 100000
//	max_cycles: 200000
//	log_level: info
//
// Missing keys take the solver defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/potflow/solver"
)

// Config mirrors solver.Options plus the log level.
type Config struct {
	Tolerance     float64 `yaml:"tolerance"`
	StepTarget    float64 `yaml:"step_target"`
	MaxIterations int     `yaml:"max_iterations"`
	MaxCycles     int     `yaml:"max_cycles"`
	LogLevel      string  `yaml:"log_level"`
}

// Default returns the configuration matching solver.DefaultOptions.
func Default() *Config {
	o := solver.DefaultOptions()

	return &Config{
		Tolerance:     o.Tolerance,
		StepTarget:    o.StepTarget,
		MaxIterations: o.MaxIterations,
		MaxCycles:     o.MaxCycles,
		LogLevel:      "info",
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML, applies defaults to absent keys and validates.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var raw Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.Tolerance != 0 {
		cfg.Tolerance = raw.Tolerance
	}
	if raw.StepTarget != 0 {
		cfg.StepTarget = raw.StepTarget
	}
	if raw.MaxIterations != 0 {
		cfg.MaxIterations = raw.MaxIterations
	}
	if raw.MaxCycles != 0 {
		cfg.MaxCycles = raw.MaxCycles
	}
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []string
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance <= 0 {
		errs = append(errs, fmt.Sprintf("tolerance must be finite and positive, got %v", c.Tolerance))
	}
	if math.IsNaN(c.StepTarget) || math.IsInf(c.StepTarget, 0) || c.StepTarget >= 0 {
		errs = append(errs, fmt.Sprintf("step_target must be finite and negative, got %v", c.StepTarget))
	}
	if c.MaxIterations <= 0 {
		errs = append(errs, fmt.Sprintf("max_iterations must be positive, got %d", c.MaxIterations))
	}
	if c.MaxCycles <= 0 {
		errs = append(errs, fmt.Sprintf("max_cycles must be positive, got %d", c.MaxCycles))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}

// Options converts the configuration into solver options. c must be valid.
func (c *Config) Options() []solver.Option {
	return []solver.Option{
		solver.WithTolerance(c.Tolerance),
		solver.WithStepTarget(c.StepTarget),
		solver.WithMaxIterations(c.MaxIterations),
		solver.WithMaxCycles(c.MaxCycles),
	}
}
