// Package config handles descent run configuration via YAML files and
// environment variables.
//
// Configuration Precedence (highest to lowest):
//  1. Command-line flags (--epsilon, --objective, etc.)
//  2. Environment variables (DESCENT_*)
//  3. Config file (descent.yaml)
//  4. Built-in defaults
//
// Example Usage:
//
//	cfg, err := config.Load("descent.yaml")
//	if err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//	settings, err := cfg.Settings(os.Stderr)
//
// Environment Variables (all use DESCENT_ prefix):
//   - DESCENT_OBJECTIVE="expvalley"
//   - DESCENT_START="1,1"
//   - DESCENT_EPSILON=1e-4
//   - DESCENT_MAX_ITERATIONS=0
//   - DESCENT_ARMIJO_S=0.8
//   - DESCENT_ARMIJO_BETA=0.8
//   - DESCENT_ARMIJO_SIGMA=0.8
//   - DESCENT_ARMIJO_MAX_BACKTRACKS=0
//   - DESCENT_LOG_LEVEL="summary"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/descent/functions"
	"github.com/katalvlaran/descent/optimize"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for unreadable, unknown or out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvObjective     = "DESCENT_OBJECTIVE"
	EnvStart         = "DESCENT_START"
	EnvEpsilon       = "DESCENT_EPSILON"
	EnvMaxIterations = "DESCENT_MAX_ITERATIONS"
	EnvArmijoS       = "DESCENT_ARMIJO_S"
	EnvArmijoBeta    = "DESCENT_ARMIJO_BETA"
	EnvArmijoSigma   = "DESCENT_ARMIJO_SIGMA"
	EnvMaxBacktracks = "DESCENT_ARMIJO_MAX_BACKTRACKS"
	EnvLogLevel      = "DESCENT_LOG_LEVEL"
)

// Config holds everything needed to run one minimization.
type Config struct {
	// Objective is a functions registry name.
	Objective string `yaml:"objective"`
	// Start is the initial point; empty means the objective's standard start.
	Start []float64 `yaml:"start,flow"`
	// Epsilon is the gradient-norm tolerance.
	Epsilon float64 `yaml:"epsilon"`
	// MaxIterations caps the number of steps; 0 means unlimited.
	MaxIterations int          `yaml:"max_iterations"`
	Armijo        ArmijoConfig `yaml:"armijo"`
	Log           LogConfig    `yaml:"log"`
}

// ArmijoConfig mirrors optimize.Armijo.
type ArmijoConfig struct {
	S             float64 `yaml:"s"`
	Beta          float64 `yaml:"beta"`
	Sigma         float64 `yaml:"sigma"`
	MaxBacktracks int     `yaml:"max_backtracks"`
}

// LogConfig selects the progress output level (noop, summary, iter, trace).
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the reference run: expvalley from its standard start,
// ε = 1e-4, s = β = σ = 0.8, no caps, summary logging.
func Default() *Config {
	a := optimize.DefaultArmijo()

	return &Config{
		Objective: "expvalley",
		Epsilon:   optimize.DefaultEpsilon,
		Armijo: ArmijoConfig{
			S:             a.S,
			Beta:          a.Beta,
			Sigma:         a.Sigma,
			MaxBacktracks: a.MaxBacktracks,
		},
		Log: LogConfig{Level: optimize.LogSummary.String()},
	}
}

// LoadFromFile overlays the YAML file at path onto Default. An empty path
// returns the defaults. Unknown keys are rejected.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// Load reads the file, applies the environment and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from set DESCENT_* variables. Unlike a missing
// variable, a malformed one is an error.
func (c *Config) ApplyEnv() error {
	c.Objective = getEnv(EnvObjective, c.Objective)
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)

	var err error
	if v := os.Getenv(EnvStart); v != "" {
		if c.Start, err = ParseVector(v); err != nil {
			return fmt.Errorf("%s: %w", EnvStart, err)
		}
	}
	if c.Epsilon, err = getEnvFloat(EnvEpsilon, c.Epsilon); err != nil {
		return err
	}
	if c.MaxIterations, err = getEnvInt(EnvMaxIterations, c.MaxIterations); err != nil {
		return err
	}
	if c.Armijo.S, err = getEnvFloat(EnvArmijoS, c.Armijo.S); err != nil {
		return err
	}
	if c.Armijo.Beta, err = getEnvFloat(EnvArmijoBeta, c.Armijo.Beta); err != nil {
		return err
	}
	if c.Armijo.Sigma, err = getEnvFloat(EnvArmijoSigma, c.Armijo.Sigma); err != nil {
		return err
	}
	if c.Armijo.MaxBacktracks, err = getEnvInt(EnvMaxBacktracks, c.Armijo.MaxBacktracks); err != nil {
		return err
	}

	return nil
}

// Validate checks the objective name, the log level and the optimizer settings.
func (c *Config) Validate() error {
	if _, err := functions.Lookup(c.Objective); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Settings(nil); err != nil {
		return err
	}

	return nil
}

// Settings converts the configuration into optimizer settings. Progress
// output goes to w; a nil w disables it.
func (c *Config) Settings(w io.Writer) (optimize.Settings, error) {
	level, err := optimize.ParseLogLevel(c.Log.Level)
	if err != nil {
		return optimize.Settings{}, fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	s := optimize.Settings{
		Epsilon: c.Epsilon,
		Armijo: optimize.Armijo{
			S:             c.Armijo.S,
			Beta:          c.Armijo.Beta,
			Sigma:         c.Armijo.Sigma,
			MaxBacktracks: c.Armijo.MaxBacktracks,
		},
		MaxIterations: c.MaxIterations,
	}
	if w != nil {
		s.Logger = optimize.NewLogger(level, w)
	}
	if err = s.Validate(); err != nil {
		return optimize.Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return s, nil
}

// String returns a one-line summary suitable for logging.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Objective: %s, Start: %v, Epsilon: %g, MaxIterations: %d, Armijo: s=%g beta=%g sigma=%g max=%d, Log: %s}",
		c.Objective, c.Start, c.Epsilon, c.MaxIterations,
		c.Armijo.S, c.Armijo.Beta, c.Armijo.Sigma, c.Armijo.MaxBacktracks,
		c.Log.Level,
	)
}

// ParseVector parses a comma-separated list of floats such as "1, 1".
func ParseVector(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: vector entry %q: %w", ErrInvalidConfig, p, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty vector %q", ErrInvalidConfig, s)
	}

	return out, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	if val := os.Getenv(key); val != "" {
		i, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return defaultVal, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, val, err)
		}
		return i, nil
	}
	return defaultVal, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return defaultVal, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, val, err)
		}
		return f, nil
	}
	return defaultVal, nil
}
