// Package optimize minimizes smooth unconstrained functions of a column
// vector by steepest descent with an Armijo backtracking line search.
//
// The package provides:
//
//   - ArmijoLineSearch: finds the first t = s·β^m (m = 0, 1, ...) with
//     f(x) − f(x + t·d) ≥ −σ·t·∇f(x)ᵀd.
//   - GradientDescent: iterates x ← x − t·∇f(x) until ‖∇f(x)‖ < ε, using the
//     line search with s = β = σ = 0.8.
//   - Minimize / MinimizeContext: the same driver with Settings (iteration and
//     backtracking caps, a leveled Logger, a per-iteration Recorder) and a
//     Result carrying evaluation counters.
//
// Objectives and gradients are caller-supplied closures over *matrix.Dense;
// no automatic or numerical differentiation is performed. Both must be pure:
// the driver evaluates f(x) and ∇f(x) once per point and reuses the values.
//
// Without caps the line search has no trial limit. For a non-descent
// direction it stops only once t·d vanishes against x in floating point, and
// an objective unbounded along d can keep it searching forever. Set
// Armijo.MaxBacktracks or use MinimizeContext with a deadline when that
// matters.
package optimize
