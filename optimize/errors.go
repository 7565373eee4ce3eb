package optimize

import "errors"

var (
	// ErrLineSearchFailed is returned when Armijo.MaxBacktracks trials pass
	// without satisfying the sufficient-decrease condition.
	ErrLineSearchFailed = errors.New("optimize: line search failed to find sufficient decrease")

	// ErrIterationLimit is returned together with the last iterate when
	// Settings.MaxIterations steps pass without convergence.
	ErrIterationLimit = errors.New("optimize: iteration limit reached")

	// ErrBadEpsilon is returned when the gradient tolerance is not a finite positive number.
	ErrBadEpsilon = errors.New("optimize: epsilon must be finite and > 0")

	// ErrBadSettings is returned for out-of-range line search parameters or negative caps.
	ErrBadSettings = errors.New("optimize: invalid settings")

	// ErrNilFunc is returned when the objective or its gradient is missing.
	ErrNilFunc = errors.New("optimize: nil objective or gradient")
)
