// Package config loads pokerhands settings from an HCL file and the
// environment. Precedence, highest first: command-line flags (applied by the
// caller), environment variables, the config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvLogLevel   = "POKERHANDS_LOG_LEVEL"
	EnvSeed       = "POKERHANDS_SEED"
	EnvWorkers    = "POKERHANDS_WORKERS"
	EnvIterations = "POKERHANDS_ITERATIONS"

	// EnvNoColor follows https://no-color.org: any non-empty value disables colour.
	EnvNoColor = "NO_COLOR"
)

const (
	defaultLogLevel   = "info"
	defaultIterations = 100000
)

// Config is the complete pokerhands configuration
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Seed     int64         `hcl:"seed,optional"` // 0 means derive from the clock
	Color    *bool         `hcl:"color,optional"`
	Odds     *OddsSettings `hcl:"odds,block"`
}

// OddsSettings tunes the Monte Carlo equity estimator
type OddsSettings struct {
	Iterations int `hcl:"iterations,optional"`
	Workers    int `hcl:"workers,optional"` // 0 means one per CPU
}

// Default returns the built-in configuration
func Default() *Config {
	color := true
	return &Config{
		LogLevel: defaultLogLevel,
		Color:    &color,
		Odds: &OddsSettings{
			Iterations: defaultIterations,
		},
	}
}

// LoadFile loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadFile(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Load reads the config file, then the optional dotenv file, then applies
// environment overrides. An empty or missing envFile is ignored.
func Load(filename, envFile string) (*Config, error) {
	cfg, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables looked up with
// lookup (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Seed = seed
	}

	if v, ok := lookup(EnvWorkers); ok && v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvWorkers, err)
		}
		c.Odds.Workers = workers
	}

	if v, ok := lookup(EnvIterations); ok && v != "" {
		iterations, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvIterations, err)
		}
		c.Odds.Iterations = iterations
	}

	if v, ok := lookup(EnvNoColor); ok && v != "" {
		off := false
		c.Color = &off
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Color == nil {
		color := true
		c.Color = &color
	}
	if c.Odds == nil {
		c.Odds = &OddsSettings{}
	}
	if c.Odds.Iterations == 0 {
		c.Odds.Iterations = defaultIterations
	}
}

// Validate checks the configuration for out-of-range values
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Odds.Iterations <= 0 {
		return fmt.Errorf("odds iterations must be positive, got %d", c.Odds.Iterations)
	}
	if c.Odds.Workers < 0 {
		return fmt.Errorf("odds workers cannot be negative, got %d", c.Odds.Workers)
	}
	return nil
}

// ColorEnabled reports whether styled output is wanted
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
