// Package optimize defines the problem, settings and result types of the
// gradient descent driver.
package optimize

import (
	"fmt"
	"math"

	"github.com/katalvlaran/descent/matrix"
)

// Reference parameters of the line search and the driver.
const (
	// DefaultStep is the initial trial step s.
	DefaultStep = 0.8
	// DefaultBeta is the contraction factor β applied after each failed trial.
	DefaultBeta = 0.8
	// DefaultSigma is the sufficient-decrease factor σ.
	DefaultSigma = 0.8
	// DefaultEpsilon is the gradient-norm tolerance of DefaultSettings.
	DefaultEpsilon = 1e-4
)

// Func evaluates the objective at a column vector x. It must not modify x.
type Func func(x *matrix.Dense) (float64, error)

// Grad evaluates the gradient of the objective at x as a column vector of
// the same shape. It must not modify x.
type Grad func(x *matrix.Dense) (*matrix.Dense, error)

// Problem pairs an objective with its closed-form gradient.
type Problem struct {
	Func Func
	Grad Grad
}

func (p Problem) validate() error {
	if p.Func == nil || p.Grad == nil {
		return ErrNilFunc
	}

	return nil
}

// Armijo configures the backtracking line search.
//
// Fields:
//   - S            : initial trial step (s > 0).
//   - Beta         : contraction per failed trial (0 < β < 1).
//   - Sigma        : sufficient-decrease factor (0 < σ < 1).
//   - MaxBacktracks: maximum number of trials; 0 means unlimited.
type Armijo struct {
	S             float64
	Beta          float64
	Sigma         float64
	MaxBacktracks int
}

// DefaultArmijo returns s = β = σ = 0.8 with no trial cap.
func DefaultArmijo() Armijo {
	return Armijo{S: DefaultStep, Beta: DefaultBeta, Sigma: DefaultSigma}
}

// Validate reports ErrBadSettings for parameters outside their open ranges.
func (a Armijo) Validate() error {
	switch {
	case !(a.S > 0) || math.IsInf(a.S, 0):
		return fmt.Errorf("%w: armijo s=%g must be finite and > 0", ErrBadSettings, a.S)
	case !(a.Beta > 0 && a.Beta < 1):
		return fmt.Errorf("%w: armijo beta=%g must be in (0,1)", ErrBadSettings, a.Beta)
	case !(a.Sigma > 0 && a.Sigma < 1):
		return fmt.Errorf("%w: armijo sigma=%g must be in (0,1)", ErrBadSettings, a.Sigma)
	case a.MaxBacktracks < 0:
		return fmt.Errorf("%w: armijo max backtracks=%d must be >= 0", ErrBadSettings, a.MaxBacktracks)
	}

	return nil
}

// Step is the outcome of one line search.
type Step struct {
	T      float64       // accepted step s·β^m
	Trials int           // trials evaluated, m+1 on success
	F      float64       // f(X)
	X      *matrix.Dense // accepted point x + T·d
}

// Settings configures Minimize.
//
// Fields:
//   - Epsilon      : stop once ‖∇f(x)‖ < Epsilon.
//   - Armijo       : line search parameters.
//   - MaxIterations: step cap; 0 means unlimited.
//   - Logger       : optional progress output; nil is silent.
//   - Recorder     : optional callback invoked after every accepted step.
type Settings struct {
	Epsilon       float64
	Armijo        Armijo
	MaxIterations int
	Logger        *Logger
	Recorder      func(Iteration)
}

// DefaultSettings returns ε = 1e-4, DefaultArmijo and no caps.
func DefaultSettings() Settings {
	return Settings{Epsilon: DefaultEpsilon, Armijo: DefaultArmijo()}
}

// Validate checks the tolerance, the line search parameters and the caps.
func (s Settings) Validate() error {
	if !(s.Epsilon > 0) || math.IsInf(s.Epsilon, 0) {
		return fmt.Errorf("%w: got %g", ErrBadEpsilon, s.Epsilon)
	}
	if err := s.Armijo.Validate(); err != nil {
		return err
	}
	if s.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations=%d must be >= 0", ErrBadSettings, s.MaxIterations)
	}

	return nil
}

// Iteration describes one accepted step. GradNorm is ‖∇f‖ at the point the
// step started from; X and F belong to the point it reached.
type Iteration struct {
	Iter     int
	X        *matrix.Dense
	F        float64
	GradNorm float64
	Step     float64
	Trials   int
}

// Summary counts the work done by a run.
type Summary struct {
	NumIter       int // steps taken plus one, the final convergence check included
	NumLineSearch int
	NumFuncEval   int
	NumGradEval   int
}

// Result is the outcome of Minimize.
type Result struct {
	X        *matrix.Dense
	F        float64
	GradNorm float64
	Summary
}
