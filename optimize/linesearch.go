package optimize

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/descent/matrix"
)

// ArmijoLineSearch returns the first step t = s·β^m, m = 0, 1, ..., with
//
//	f(x) − f(x + t·d) ≥ −σ·t·∇f(x)ᵀd.
//
// The parameters are used as given and the number of trials is unlimited;
// see the package documentation for what that means for a non-descent d.
// Errors from f, grad or the vector arithmetic are returned unchanged apart
// from call-site context.
func ArmijoLineSearch(s, beta, sigma float64, f Func, grad Grad, x, d *matrix.Dense) (float64, error) {
	a := Armijo{S: s, Beta: beta, Sigma: sigma}
	step, err := a.Search(context.Background(), Problem{Func: f, Grad: grad}, x, d, nil)
	if err != nil {
		return 0, err
	}

	return step.T, nil
}

// Search runs the backtracking loop from x along d.
//
// Implementation:
//   - Stage 1: evaluate f(x) and g = ∇f(x) once; compute gᵀd.
//   - Stage 2: for m = 0, 1, ...: t = S·Beta^m, y = x + t·d; accept when
//     f(x) − f(y) ≥ −Sigma·S·Beta^m·gᵀd.
//
// The receiver is not validated. A positive MaxBacktracks bounds the trials;
// when it is exhausted the returned Step carries the trial count along with
// ErrLineSearchFailed. ctx is checked before every trial.
func (a Armijo) Search(ctx context.Context, p Problem, x, d *matrix.Dense, logger *Logger) (Step, error) {
	if err := p.validate(); err != nil {
		return Step{}, fmt.Errorf("Armijo.Search: %w", err)
	}
	fx, err := p.Func(x)
	if err != nil {
		return Step{}, fmt.Errorf("Armijo.Search: f(x): %w", err)
	}
	g, err := p.Grad(x)
	if err != nil {
		return Step{}, fmt.Errorf("Armijo.Search: grad(x): %w", err)
	}

	return a.search(ctx, p.Func, x, d, fx, g, logger)
}

// search is Search with f(x) and ∇f(x) already known.
func (a Armijo) search(ctx context.Context, f Func, x, d *matrix.Dense, fx float64, g *matrix.Dense, logger *Logger) (Step, error) {
	gd, err := matrix.Dot(g, d)
	if err != nil {
		return Step{}, fmt.Errorf("Armijo.Search: gradᵀd: %w", err)
	}
	if logger.enable(LogTrace) {
		logger.log("INFO: armijo search run\n")
	}

	var (
		m      int
		pw, t  float64
		y      *matrix.Dense
		fy     float64
		trials int
	)
	for m = 0; ; m++ {
		if a.MaxBacktracks > 0 && m >= a.MaxBacktracks {
			return Step{Trials: trials}, fmt.Errorf("Armijo.Search: %d trials, last t=%g: %w", trials, t, ErrLineSearchFailed)
		}
		if err = ctx.Err(); err != nil {
			return Step{Trials: trials}, err
		}

		pw = math.Pow(a.Beta, float64(m))
		t = a.S * pw
		if y, err = matrix.AXPY(x, t, d); err != nil {
			return Step{Trials: trials}, fmt.Errorf("Armijo.Search: x+t·d: %w", err)
		}
		if fy, err = f(y); err != nil {
			return Step{Trials: trials}, fmt.Errorf("Armijo.Search: f(x+t·d): %w", err)
		}
		trials++

		// Same association as −σ·s·β^m·gᵀd evaluated left to right.
		if fx-fy >= -a.Sigma*a.S*pw*gd {
			break
		}
	}

	if logger.enable(LogTrace) {
		logger.log("\t#iter=%d, t=%g\n", trials, t)
	}

	return Step{T: t, Trials: trials, F: fy, X: y}, nil
}
