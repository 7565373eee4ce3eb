package functions

import (
	"fmt"

	"github.com/katalvlaran/descent/matrix"
)

// Gonum adapts a slice-based objective, such as the ones in
// gonum.org/v1/gonum/optimize/functions, to Objective.
//
// Dim fixes the accepted dimension; 0 accepts any n ≥ 1. The gonum test
// functions panic on a wrong dimension, so the check runs before F and G.
type Gonum struct {
	Name string
	Dim  int
	F    func(x []float64) float64
	G    func(grad, x []float64)
}

func (a Gonum) input(x *matrix.Dense) ([]float64, error) {
	v, err := values(a.Name, x, 1)
	if err != nil {
		return nil, err
	}
	if a.Dim > 0 && len(v) != a.Dim {
		return nil, fmt.Errorf("%s: %w: want %d entries, got %d", a.Name, ErrDimension, a.Dim, len(v))
	}

	return v, nil
}

func (a Gonum) Func(x *matrix.Dense) (float64, error) {
	v, err := a.input(x)
	if err != nil {
		return 0, err
	}

	return a.F(v), nil
}

func (a Gonum) Grad(x *matrix.Dense) (*matrix.Dense, error) {
	v, err := a.input(x)
	if err != nil {
		return nil, err
	}
	g := make([]float64, len(v))
	a.G(g, v)

	return matrix.NewVector(g), nil
}
