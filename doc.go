// Package descent is a small numerical toolkit for unconstrained smooth
// minimization: a dense 1-based matrix type, an Armijo backtracking line
// search and a steepest descent driver built on top of it.
//
// What is in the box?
//
//	matrix/       Dense matrices with 1-based (i,j) and column-major linear
//	              access, arithmetic, 2×2 determinant, norm and vector helpers
//	optimize/     ArmijoLineSearch, GradientDescent, Minimize with settings,
//	              caps, context cancellation and leveled progress output
//	functions/    test objectives with closed-form gradients and a registry
//	config/       YAML and DESCENT_* environment configuration
//	cmd/descent/  CLI: run, list, version
//
// Quick start:
//
//	x0 := matrix.NewVector([]float64{1, 1})
//	f := functions.ExpValley{}
//	x, err := optimize.GradientDescent(f.Func, f.Grad, x0, 1e-4)
//
// Conventions:
//   - Indices are 1-based; the linear index k walks columns first.
//   - Every operation returns a new matrix; inputs are never mutated.
//   - Failures are reported as wrapped sentinel errors, checked with errors.Is.
package descent
