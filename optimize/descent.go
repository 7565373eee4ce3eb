package optimize

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/descent/matrix"
)

// GradientDescent minimizes f from x0 with the reference parameters
// (s = β = σ = 0.8, no caps) and returns the first iterate whose gradient
// norm is below epsilon. x0 is not modified.
//
// Errors:
//   - ErrBadEpsilon: epsilon is not finite and positive.
//   - ErrNilFunc: f or grad is nil.
//   - errors from f, grad and the vector arithmetic.
func GradientDescent(f Func, grad Grad, x0 *matrix.Dense, epsilon float64) (*matrix.Dense, error) {
	s := DefaultSettings()
	s.Epsilon = epsilon
	res, err := Minimize(Problem{Func: f, Grad: grad}, x0, s)
	if err != nil {
		return nil, err
	}

	return res.X, nil
}

// Minimize is MinimizeContext with context.Background().
func Minimize(p Problem, x0 *matrix.Dense, s Settings) (*Result, error) {
	return MinimizeContext(context.Background(), p, x0, s)
}

// MinimizeContext runs steepest descent with Armijo steps.
//
// Algorithm Outline:
//  1. x ← copy of x0; f(x) is evaluated once.
//  2. g ← ∇f(x). Converged if ‖g‖ < ε.
//  3. d ← −g; (t, y) ← line search from x along d; x ← y; go to 2.
//
// Stops:
//   - ‖∇f(x)‖ < s.Epsilon: returns the Result and nil.
//   - s.MaxIterations > 0 steps taken: returns the Result so far and ErrIterationLimit.
//   - ctx done: returns the Result so far and ctx.Err().
//   - f, grad or line search error: returns the Result so far and that error.
//
// The Result is nil only when validation fails before the first evaluation.
func MinimizeContext(ctx context.Context, p Problem, x0 *matrix.Dense, s Settings) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("Minimize: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("Minimize: %w", err)
	}
	if err := matrix.ValidateColumnVector(x0); err != nil {
		return nil, fmt.Errorf("Minimize: x0: %w", err)
	}

	logger := s.Logger
	if logger.enable(LogSummary) {
		logger.log("INFO: gradient descent run\n")
		logger.log("\tinitial point: %s\n", formatPoint(x0))
		logger.log("\tepsilon: %g\n", s.Epsilon)
	}

	res := &Result{X: x0.Copy()}
	fx, err := p.Func(res.X)
	if err != nil {
		return res, fmt.Errorf("Minimize: f(x0): %w", err)
	}
	res.F = fx
	res.NumFuncEval++

	var (
		iter int
		g, d *matrix.Dense
		step Step
	)
	for {
		res.NumIter = iter + 1
		if err = ctx.Err(); err != nil {
			return res, err
		}

		if g, err = p.Grad(res.X); err != nil {
			return res, fmt.Errorf("Minimize: grad at iter %d: %w", iter, err)
		}
		res.NumGradEval++
		if err = matrix.ValidateBinarySameShape(g, res.X); err != nil {
			return res, fmt.Errorf("Minimize: grad at iter %d: %w", iter, err)
		}
		res.GradNorm = g.Mod()
		if res.GradNorm < s.Epsilon {
			break
		}
		if s.MaxIterations > 0 && iter >= s.MaxIterations {
			return res, fmt.Errorf("Minimize: %d iterations, |grad|=%g: %w", iter, res.GradNorm, ErrIterationLimit)
		}
		iter++

		if d, err = matrix.Neg(g); err != nil {
			return res, fmt.Errorf("Minimize: %w", err)
		}
		step, err = s.Armijo.search(ctx, p.Func, res.X, d, res.F, g, logger)
		res.NumLineSearch++
		res.NumFuncEval += step.Trials
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return res, err
			}

			return res, fmt.Errorf("Minimize: iter %d: %w", iter, err)
		}
		res.X, res.F = step.X, step.F

		if logger.enable(LogIter) {
			logger.log("\titer=%d f=%g |grad|=%g t=%g trials=%d\n", iter, res.F, res.GradNorm, step.T, step.Trials)
		}
		if s.Recorder != nil {
			s.Recorder(Iteration{
				Iter:     iter,
				X:        res.X.Copy(),
				F:        res.F,
				GradNorm: res.GradNorm,
				Step:     step.T,
				Trials:   step.Trials,
			})
		}
	}

	if logger.enable(LogSummary) {
		logger.log("\tn_iterations: %d\n", res.NumIter)
		logger.log("\tn_line_searches: %d\n", res.NumLineSearch)
		logger.log("\toptimal point: %s\n", formatPoint(res.X))
		logger.log("\toptimal value: %g\n", res.F)
	}

	return res, nil
}
