package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dsviz/sequence"
	"github.com/katalvlaran/dsviz/sorting"
)

// Config holds defaults loaded from a YAML file. Explicit flags override it.
//
//	format: text
//	sort:
//	  algorithm: selection
//	  count: 20
//	  min: 1
//	  max: 100
//	  seed: 42
//	  delay: 500ms
type Config struct {
	Format string     `yaml:"format"`
	Sort   SortConfig `yaml:"sort"`
}

// SortConfig holds defaults for the sort and generate commands.
type SortConfig struct {
	Algorithm string `yaml:"algorithm"`
	Count     int    `yaml:"count"`
	Min       int    `yaml:"min"`
	Max       int    `yaml:"max"`

	// Seed 0 means a fresh seed per run.
	Seed int64 `yaml:"seed"`

	// Delay is the pause after printing each pass; presentation only.
	Delay time.Duration `yaml:"delay"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Format: "text",
		Sort: SortConfig{
			Algorithm: sorting.Bubble.String(),
			Count:     10,
			Min:       sequence.DefaultMin,
			Max:       sequence.DefaultMax,
		},
	}
}

// LoadConfig reads path over DefaultConfig; keys absent from the file keep their
// defaults and an empty file yields DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that flags would otherwise reject.
func (c Config) Validate() error {
	if !isValidFormat(c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if _, err := sorting.ParseAlgorithm(c.Sort.Algorithm); err != nil {
		return err
	}
	if c.Sort.Min > c.Sort.Max {
		return fmt.Errorf("sort.min (%d) exceeds sort.max (%d)", c.Sort.Min, c.Sort.Max)
	}
	if c.Sort.Delay < 0 {
		return fmt.Errorf("sort.delay must not be negative")
	}
	return nil
}
