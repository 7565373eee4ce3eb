package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/katalvlaran/descent/config"
	"github.com/katalvlaran/descent/functions"
	"github.com/katalvlaran/descent/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "descent v0.1.0 (dev)\n", out)
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range functions.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "minimizer=(0, 1)")
}

func TestRun_DefaultObjective(t *testing.T) {
	out, logs, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "expvalley")
	assert.Contains(t, out, "iterations:")
	assert.Contains(t, logs, "INFO: gradient descent run")
	assert.Contains(t, logs, "optimal point:")
}

func TestRun_FlagsOverride(t *testing.T) {
	out, logs, err := execute(t, "run",
		"--objective", "booth",
		"--start", "0.5, 2.5",
		"--epsilon", "1e-6",
		"--log-level", "noop",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "booth")
	assert.Empty(t, logs)
}

func TestRun_ConfigFileAndEnv(t *testing.T) {
	path := t.TempDir() + "/descent.yaml"
	writeConfig(t, path, "objective: sphere\nlog:\n  level: iter\n")
	t.Setenv(config.EnvEpsilon, "1e-3")

	out, logs, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sphere")
	assert.Contains(t, logs, "iter=1 ")
	assert.Contains(t, logs, "epsilon: 0.001")
}

func TestRun_IterationLimit(t *testing.T) {
	out, _, err := execute(t, "run", "--objective", "rosenbrock", "--max-iterations", "1", "--log-level", "noop")
	require.ErrorIs(t, err, optimize.ErrIterationLimit)
	assert.Contains(t, out, "rosenbrock", "partial result is still printed")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run", "--objective", "nope")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--start", "1,x")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--beta", "1.5")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--start", "1,2,3", "--objective", "booth", "--log-level", "noop")
	require.ErrorIs(t, err, functions.ErrDimension)

	_, _, err = execute(t, "run", "extra")
	require.Error(t, err)
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}
