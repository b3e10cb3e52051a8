// Package validator provides read-only consumers of pkg/constraints and
// pkg/solver: a composite rule-check, a structured validation report, a
// per-cell violation list for an external UI, and a one-step hint
// oracle.
package validator

import (
	"github.com/eng618/binairo-csp/pkg/constraints"
	"github.com/eng618/binairo-csp/pkg/grid"
)

// ValidationResult is the structured report returned by Validate.
type ValidationResult struct {
	ConstraintsValid bool
	Solvable         bool
	Solution         *grid.Grid
	Violations       []string
}

// Validate runs the composite rule check and (if the rules hold)
// delegates to the default solver to test solvability.
func Validate(g *grid.Grid) ValidationResult {
	result := ValidationResult{
		ConstraintsValid: constraints.IsValid(g),
		Violations:       violationMessages(g),
	}
	if result.ConstraintsValid {
		solvable, solution := IsSolvable(g)
		result.Solvable = solvable
		result.Solution = solution
	}
	return result
}

// IsValid is the composite AND of all three Binairo rules.
func IsValid(g *grid.Grid) bool {
	return constraints.IsValid(g)
}

// SuggestValue reports the forced value at (r,c) as "0" or "1", or
// "ambiguous" when both values remain possible (or the cell is already
// filled).
func SuggestValue(g *grid.Grid, r, c int) string {
	if g.Get(r, c) != grid.Empty {
		return "ambiguous"
	}
	domain := constraints.PossibleValues(g, r, c)
	if len(domain) == 1 {
		return domain[0].String()
	}
	return "ambiguous"
}

// ObviousMove is a forced assignment found by FindObviousMove.
type ObviousMove struct {
	Row, Col int
	Value    grid.Value
}

// FindObviousMove returns the first empty cell (in row-major order)
// whose domain is a singleton, along with its forced value. The second
// return value is false if no such cell exists.
func FindObviousMove(g *grid.Grid) (ObviousMove, bool) {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g.Get(r, c) != grid.Empty {
				continue
			}
			domain := constraints.PossibleValues(g, r, c)
			if len(domain) == 1 {
				return ObviousMove{Row: r, Col: c, Value: domain[0]}, true
			}
		}
	}
	return ObviousMove{}, false
}
