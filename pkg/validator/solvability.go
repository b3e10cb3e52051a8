package validator

import (
	"github.com/eng618/binairo-csp/pkg/grid"
	"github.com/eng618/binairo-csp/pkg/solver"
)

// IsSolvable delegates to the default solver (the Heuristic strategy,
// spec.md §4.9) and reports whether it reaches a full, valid grid. It
// never mutates g — the solver runs against a clone.
func IsSolvable(g *grid.Grid) (bool, *grid.Grid) {
	strategy, err := solver.Get(solver.DefaultStrategyName)
	if err != nil {
		return false, nil
	}
	solved, ok := strategy.SolveWithTiming(grid.NewState(g.Clone()))
	if !ok {
		return false, nil
	}
	return true, solved.Grid
}
