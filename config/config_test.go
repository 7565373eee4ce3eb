package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/descent/config"
	"github.com/katalvlaran/descent/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "descent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_MatchesOptimizeDefaults(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	s, err := cfg.Settings(nil)
	require.NoError(t, err)
	want := optimize.DefaultSettings()
	assert.Equal(t, want.Epsilon, s.Epsilon)
	assert.Equal(t, want.Armijo, s.Armijo)
	assert.Equal(t, 0, s.MaxIterations)
	assert.Nil(t, s.Logger)
	assert.Equal(t, "expvalley", cfg.Objective)
	assert.Empty(t, cfg.Start)
}

func TestLoadFromFile_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
objective: rosenbrock
start: [-1.2, 1]
max_iterations: 500
armijo:
  beta: 0.5
log:
  level: trace
`)
	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "rosenbrock", cfg.Objective)
	assert.Equal(t, []float64{-1.2, 1}, cfg.Start)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.Equal(t, 0.5, cfg.Armijo.Beta)
	assert.Equal(t, 0.8, cfg.Armijo.S, "unset keys keep defaults")
	assert.Equal(t, 1e-4, cfg.Epsilon)

	var buf bytes.Buffer
	s, err := cfg.Settings(&buf)
	require.NoError(t, err)
	require.NotNil(t, s.Logger)
	assert.Equal(t, optimize.LogTrace, s.Logger.Level)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.LoadFromFile(writeFile(t, "epsilonn: 1\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.LoadFromFile(writeFile(t, "epsilon: [1\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg, err := config.LoadFromFile(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(config.EnvObjective, "booth")
	t.Setenv(config.EnvStart, "0.5, -2")
	t.Setenv(config.EnvEpsilon, "1e-6")
	t.Setenv(config.EnvMaxIterations, "42")
	t.Setenv(config.EnvArmijoS, "1")
	t.Setenv(config.EnvArmijoBeta, "0.5")
	t.Setenv(config.EnvArmijoSigma, "0.1")
	t.Setenv(config.EnvMaxBacktracks, "30")
	t.Setenv(config.EnvLogLevel, "iter")

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, &config.Config{
		Objective:     "booth",
		Start:         []float64{0.5, -2},
		Epsilon:       1e-6,
		MaxIterations: 42,
		Armijo:        config.ArmijoConfig{S: 1, Beta: 0.5, Sigma: 0.1, MaxBacktracks: 30},
		Log:           config.LogConfig{Level: "iter"},
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv_Malformed(t *testing.T) {
	t.Setenv(config.EnvEpsilon, "tiny")
	require.ErrorIs(t, config.Default().ApplyEnv(), config.ErrInvalidConfig)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "objective: sphere\nepsilon: 0.01\n")
	t.Setenv(config.EnvEpsilon, "0.001")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sphere", cfg.Objective)
	assert.Equal(t, 0.001, cfg.Epsilon)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"unknown objective": func(c *config.Config) { c.Objective = "nope" },
		"zero epsilon":      func(c *config.Config) { c.Epsilon = 0 },
		"beta out of range": func(c *config.Config) { c.Armijo.Beta = 1 },
		"negative cap":      func(c *config.Config) { c.MaxIterations = -1 },
		"bad log level":     func(c *config.Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		cfg := config.Default()
		mutate(cfg)
		require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, name)
	}
}

func TestParseVector(t *testing.T) {
	v, err := config.ParseVector(" 1, -2.5,3e-1 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2.5, 0.3}, v)

	_, err = config.ParseVector("1,x")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	_, err = config.ParseVector(" , ")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestString(t *testing.T) {
	assert.Contains(t, config.Default().String(), "Objective: expvalley")
}
