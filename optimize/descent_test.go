package optimize_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/descent/functions"
	"github.com/katalvlaran/descent/matrix"
	"github.com/katalvlaran/descent/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expValley = functions.Problem(functions.ExpValley{})

// TestGradientDescent_ExpValley converges from (1,1) to the minimizer (0,1).
func TestGradientDescent_ExpValley(t *testing.T) {
	t.Parallel()

	x0 := matrix.NewVector([]float64{1, 1})
	x, err := optimize.GradientDescent(expValley.Func, expValley.Grad, x0, 1e-4)
	require.NoError(t, err)

	x1, x2, err := x.Pair()
	require.NoError(t, err)
	assert.InDelta(t, 0, x1, 1e-3)
	assert.InDelta(t, 1, x2, 1e-3)

	g, err := expValley.Grad(x)
	require.NoError(t, err)
	assert.Less(t, g.Mod(), 1e-4)

	// x0 is not modified.
	assert.Equal(t, []float64{1, 1}, x0.Values())
}

// TestMinimize_RecordsNonIncreasingValues checks the Armijo decrease along the run
// and the bookkeeping of Result.
func TestMinimize_RecordsNonIncreasingValues(t *testing.T) {
	t.Parallel()

	var trace []optimize.Iteration
	s := optimize.DefaultSettings()
	s.Recorder = func(it optimize.Iteration) { trace = append(trace, it) }

	x0 := matrix.NewVector([]float64{1, 1})
	res, err := optimize.Minimize(expValley, x0, s)
	require.NoError(t, err)
	require.NotEmpty(t, trace)

	f0, err := expValley.Func(x0)
	require.NoError(t, err)
	prev := f0
	trials := 0
	for i, it := range trace {
		assert.Equal(t, i+1, it.Iter)
		assert.LessOrEqual(t, it.F, prev, "iteration %d", it.Iter)
		assert.Greater(t, it.Step, 0.0)
		prev = it.F
		trials += it.Trials
	}

	last := trace[len(trace)-1]
	assert.Equal(t, res.F, last.F)
	assert.Equal(t, res.X.Values(), last.X.Values())
	assert.Less(t, res.GradNorm, 1e-4)

	assert.Equal(t, len(trace)+1, res.NumIter)
	assert.Equal(t, len(trace), res.NumLineSearch)
	assert.Equal(t, trials+1, res.NumFuncEval)
	assert.Equal(t, len(trace)+1, res.NumGradEval)
}

func TestMinimize_AlreadyConverged(t *testing.T) {
	t.Parallel()

	res, err := optimize.Minimize(expValley, matrix.NewVector([]float64{0, 1}), optimize.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumIter)
	assert.Equal(t, 0, res.NumLineSearch)
	assert.Equal(t, 0.0, res.F)
}

func TestMinimize_IterationLimit(t *testing.T) {
	t.Parallel()

	s := optimize.DefaultSettings()
	s.Epsilon = 1e-12
	s.MaxIterations = 3
	res, err := optimize.Minimize(functions.Problem(functions.Rosenbrock{}), matrix.NewVector([]float64{-1.2, 1}), s)
	require.ErrorIs(t, err, optimize.ErrIterationLimit)
	require.NotNil(t, res)
	assert.Equal(t, 3, res.NumLineSearch)
	assert.Equal(t, 4, res.NumIter)
}

func TestMinimize_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	s := optimize.DefaultSettings()
	s.Epsilon = 1e-300
	s.Recorder = func(it optimize.Iteration) {
		if it.Iter == 2 {
			cancel()
		}
	}
	res, err := optimize.MinimizeContext(ctx, expValley, matrix.NewVector([]float64{1, 1}), s)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.NumLineSearch)
}

func TestMinimize_Validation(t *testing.T) {
	t.Parallel()

	x0 := matrix.NewVector([]float64{1, 1})

	_, err := optimize.GradientDescent(expValley.Func, expValley.Grad, x0, 0)
	require.ErrorIs(t, err, optimize.ErrBadEpsilon)
	_, err = optimize.GradientDescent(expValley.Func, expValley.Grad, x0, -1)
	require.ErrorIs(t, err, optimize.ErrBadEpsilon)

	_, err = optimize.GradientDescent(nil, expValley.Grad, x0, 1e-4)
	require.ErrorIs(t, err, optimize.ErrNilFunc)

	_, err = optimize.GradientDescent(expValley.Func, expValley.Grad, nil, 1e-4)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	row, err := matrix.NewFromRows([][]float64{{1, 1}})
	require.NoError(t, err)
	_, err = optimize.GradientDescent(expValley.Func, expValley.Grad, row, 1e-4)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	s := optimize.DefaultSettings()
	s.Armijo.Beta = 1.5
	_, err = optimize.Minimize(expValley, x0, s)
	require.ErrorIs(t, err, optimize.ErrBadSettings)

	s = optimize.DefaultSettings()
	s.MaxIterations = -1
	_, err = optimize.Minimize(expValley, x0, s)
	require.ErrorIs(t, err, optimize.ErrBadSettings)
}

func TestMinimize_GradientShapeAndErrors(t *testing.T) {
	t.Parallel()

	x0 := matrix.NewVector([]float64{1, 1})
	wrong := optimize.Problem{
		Func: expValley.Func,
		Grad: func(*matrix.Dense) (*matrix.Dense, error) { return matrix.NewVector([]float64{1}), nil },
	}
	_, err := optimize.Minimize(wrong, x0, optimize.DefaultSettings())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	boom := errors.New("boom")
	failing := optimize.Problem{
		Func: func(*matrix.Dense) (float64, error) { return 0, boom },
		Grad: expValley.Grad,
	}
	res, err := optimize.Minimize(failing, x0, optimize.DefaultSettings())
	require.ErrorIs(t, err, boom)
	require.NotNil(t, res)
}

// TestMinimize_OtherObjectives runs the driver on the registered problems that
// steepest descent handles in a reasonable number of steps.
func TestMinimize_OtherObjectives(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"sphere", "booth"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			e, err := functions.Lookup(name)
			require.NoError(t, err)
			s := optimize.DefaultSettings()
			s.Epsilon = 1e-8
			s.MaxIterations = 10000
			res, err := optimize.Minimize(functions.Problem(e.Objective), matrix.NewVector(e.Start), s)
			require.NoError(t, err)
			assert.InDeltaSlice(t, e.Minimizer, res.X.Values(), 1e-6)
		})
	}
}
