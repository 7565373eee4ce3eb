package functions

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gfunc "gonum.org/v1/gonum/optimize/functions"
)

// ErrUnknownObjective is returned by Lookup for an unregistered name.
var ErrUnknownObjective = errors.New("functions: unknown objective")

// Entry is a registered objective with its standard starting point and
// known global minimizer.
type Entry struct {
	Name      string
	Objective Objective
	Start     []float64
	Minimizer []float64
}

var registry = map[string]Entry{
	"expvalley": {
		Name:      "expvalley",
		Objective: ExpValley{},
		Start:     []float64{1, 1},
		Minimizer: []float64{0, 1},
	},
	"sphere": {
		Name:      "sphere",
		Objective: Sphere{},
		Start:     []float64{1, 1},
		Minimizer: []float64{0, 0},
	},
	"rosenbrock": {
		Name:      "rosenbrock",
		Objective: Rosenbrock{},
		Start:     []float64{-1.2, 1},
		Minimizer: []float64{1, 1},
	},
	"booth": {
		Name:      "booth",
		Objective: Booth{},
		Start:     []float64{0, 0},
		Minimizer: []float64{1, 3},
	},
	"beale": {
		Name:      "beale",
		Objective: Gonum{Name: "Beale", Dim: 2, F: gfunc.Beale{}.Func, G: gfunc.Beale{}.Grad},
		Start:     []float64{1, 1},
		Minimizer: []float64{3, 0.5},
	},
}

// Lookup returns the entry registered under name (case-insensitive). The
// slices in the returned Entry are copies.
func Lookup(name string) (Entry, error) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownObjective, name, strings.Join(Names(), ", "))
	}
	e.Start = append([]float64(nil), e.Start...)
	e.Minimizer = append([]float64(nil), e.Minimizer...)

	return e, nil
}

// Names lists the registered objectives in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
