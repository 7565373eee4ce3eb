// Package functions provides closed-form test objectives for the optimize
// package, each with its analytic gradient over column vectors.
//
// ExpValley, Sphere, Rosenbrock and Booth are implemented natively. Gonum
// adapts any slice-based objective from gonum.org/v1/gonum/optimize/functions;
// the registry uses it to expose Beale. Lookup resolves objectives by name
// together with a standard starting point and the known minimizer.
package functions
