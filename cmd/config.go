package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gateball-sim/gateball/sim/trace"
)

const (
	// Limits offered by the interactive prompt.
	maxInteractiveBranch = 5
	maxInteractiveDepth  = 10

	// maxContainers caps branch^depth for any tree the CLI builds.
	maxContainers = 1 << 20
)

// Config describes one gateball run, loadable from a YAML file.
// All top-level keys must be listed to satisfy KnownFields(true) strict parsing.
// Nil pointer fields mean "not set": Balls falls back to one fewer than the
// container count, Seed to the wall clock.
type Config struct {
	Branch          int    `yaml:"branch"`
	Depth           int    `yaml:"depth"`
	Balls           *int   `yaml:"balls"`
	Seed            *int64 `yaml:"seed"`
	Predict         []int  `yaml:"predict"`
	Sample          int    `yaml:"sample"`
	Trace           string `yaml:"trace"`
	Results         string `yaml:"results"`
	MetricsTextfile string `yaml:"metrics_textfile"`
}

// DefaultConfig returns the values used when neither a file nor a flag sets them.
func DefaultConfig() *Config {
	return &Config{Branch: 2, Depth: 3}
}

// LoadConfig parses a YAML config file on top of DefaultConfig.
// Uses strict field checking: unknown keys are errors.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks shape limits and parameter ranges.
func (c *Config) Validate() error {
	if c.Branch < 1 {
		return fmt.Errorf("branch must be at least 1, got %d", c.Branch)
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth must be non-negative, got %d", c.Depth)
	}
	if _, ok := containerCount(c.Branch, c.Depth); !ok {
		return fmt.Errorf("branch %d and depth %d exceed %d containers", c.Branch, c.Depth, maxContainers)
	}
	if c.Balls != nil && *c.Balls < 0 {
		return fmt.Errorf("balls must be non-negative, got %d", *c.Balls)
	}
	for _, n := range c.Predict {
		if n < 0 {
			return fmt.Errorf("predicted ball numbers must be non-negative, got %d", n)
		}
	}
	if c.Sample < 0 {
		return fmt.Errorf("sample must be non-negative, got %d", c.Sample)
	}
	if !trace.IsValidTraceLevel(c.Trace) {
		return fmt.Errorf("unknown trace level %q", c.Trace)
	}
	return nil
}

// ResolveSeed returns the configured seed, or a wall-clock seed recorded
// back into the config so the run can be reproduced.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == nil {
		seed := time.Now().UnixNano()
		c.Seed = &seed
	}
	return *c.Seed
}

// containerCount returns branch^depth, or false once it passes maxContainers.
func containerCount(branch, depth int) (int, bool) {
	count := 1
	for i := 0; i < depth; i++ {
		count *= branch
		if count > maxContainers {
			return 0, false
		}
	}
	return count, true
}
