package functions

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/descent/matrix"
	"github.com/katalvlaran/descent/optimize"
	"gonum.org/v1/gonum/floats"
)

// ErrDimension is returned when x has a shape the objective does not accept.
var ErrDimension = errors.New("functions: unsupported dimension")

// Objective is a differentiable function of a column vector.
type Objective interface {
	Func(x *matrix.Dense) (float64, error)
	Grad(x *matrix.Dense) (*matrix.Dense, error)
}

// Problem binds o to the optimize closure types.
func Problem(o Objective) optimize.Problem {
	return optimize.Problem{Func: o.Func, Grad: o.Grad}
}

// pair reads a 2×1 column vector.
func pair(name string, x *matrix.Dense) (float64, float64, error) {
	if x == nil {
		return 0, 0, fmt.Errorf("%s: %w", name, matrix.ErrNilMatrix)
	}
	x1, x2, err := x.Pair()
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w: %w", name, ErrDimension, err)
	}

	return x1, x2, nil
}

// values reads an n×1 column vector with n ≥ minLen.
func values(name string, x *matrix.Dense, minLen int) ([]float64, error) {
	if err := matrix.ValidateColumnVector(x); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrDimension, err)
	}
	if x.Rows() < minLen {
		return nil, fmt.Errorf("%s: %w: need at least %d entries, got %d", name, ErrDimension, minLen, x.Rows())
	}

	return x.Values(), nil
}

// ExpValley implements f(x) = x1² + (e^{x1} − x2)².
//
// Its only minimizer is (0, 1) with f = 0; the Hessian there is
// [[4, −2], [−2, 2]]. The valley floor x2 = e^{x1} is curved, so steepest
// descent zig-zags along it.
type ExpValley struct{}

func (ExpValley) Func(x *matrix.Dense) (float64, error) {
	x1, x2, err := pair("ExpValley", x)
	if err != nil {
		return 0, err
	}
	r := math.Exp(x1) - x2

	return x1*x1 + r*r, nil
}

func (ExpValley) Grad(x *matrix.Dense) (*matrix.Dense, error) {
	x1, x2, err := pair("ExpValley", x)
	if err != nil {
		return nil, err
	}
	e := math.Exp(x1)
	r := e - x2

	return matrix.NewVector([]float64{2*x1 + 2*r*e, -2 * r}), nil
}

// Sphere implements f(x) = Σ xᵢ² in any dimension n ≥ 1.
type Sphere struct{}

func (Sphere) Func(x *matrix.Dense) (float64, error) {
	v, err := values("Sphere", x, 1)
	if err != nil {
		return 0, err
	}

	return floats.Dot(v, v), nil
}

func (Sphere) Grad(x *matrix.Dense) (*matrix.Dense, error) {
	v, err := values("Sphere", x, 1)
	if err != nil {
		return nil, err
	}
	floats.Scale(2, v)

	return matrix.NewVector(v), nil
}

// Rosenbrock implements the extended Rosenbrock function
//
//	f(x) = Σ_{i<n} (1 − xᵢ)² + 100·(xᵢ₊₁ − xᵢ²)²
//
// for n ≥ 2. The global minimizer is (1, ..., 1) with f = 0.
type Rosenbrock struct{}

func (Rosenbrock) Func(x *matrix.Dense) (float64, error) {
	v, err := values("Rosenbrock", x, 2)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < len(v)-1; i++ {
		a := 1 - v[i]
		b := v[i+1] - v[i]*v[i]
		sum += a*a + 100*b*b
	}

	return sum, nil
}

func (Rosenbrock) Grad(x *matrix.Dense) (*matrix.Dense, error) {
	v, err := values("Rosenbrock", x, 2)
	if err != nil {
		return nil, err
	}
	n := len(v)
	g := make([]float64, n)
	for i := 0; i < n-1; i++ {
		g[i] -= 2 * (1 - v[i])
		g[i] -= 400 * (v[i+1] - v[i]*v[i]) * v[i]
	}
	for i := 1; i < n; i++ {
		g[i] += 200 * (v[i] - v[i-1]*v[i-1])
	}

	return matrix.NewVector(g), nil
}

// Booth implements f(x) = (x1 + 2·x2 − 7)² + (2·x1 + x2 − 5)², a convex
// quadratic with minimizer (1, 3).
type Booth struct{}

func (Booth) Func(x *matrix.Dense) (float64, error) {
	x1, x2, err := pair("Booth", x)
	if err != nil {
		return 0, err
	}
	a := x1 + 2*x2 - 7
	b := 2*x1 + x2 - 5

	return a*a + b*b, nil
}

func (Booth) Grad(x *matrix.Dense) (*matrix.Dense, error) {
	x1, x2, err := pair("Booth", x)
	if err != nil {
		return nil, err
	}
	a := x1 + 2*x2 - 7
	b := 2*x1 + x2 - 5

	return matrix.NewVector([]float64{2*a + 4*b, 4*a + 2*b}), nil
}
