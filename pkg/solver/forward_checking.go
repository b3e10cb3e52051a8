package solver

import (
	"github.com/eng618/binairo-csp/pkg/constraints"
	"github.com/eng618/binairo-csp/pkg/grid"
)

// ForwardChecking refines Backtracking by rejecting a tentative value
// without recursing whenever it would leave any empty row/column
// neighbor with no possible values.
type ForwardChecking struct {
	base
}

// NewForwardChecking constructs a ForwardChecking solver.
func NewForwardChecking() *ForwardChecking {
	return &ForwardChecking{}
}

func (s *ForwardChecking) Name() string { return "forward-checking" }

func (s *ForwardChecking) Solve(st *grid.State) (*grid.State, bool) {
	working := st.Clone()
	if s.backtrack(working.Grid) {
		return working, true
	}
	return nil, false
}

func (s *ForwardChecking) SolveWithTiming(st *grid.State) (*grid.State, bool) {
	return s.timed(func() (*grid.State, bool) { return s.Solve(st) })
}

func (s *ForwardChecking) backtrack(g *grid.Grid) bool {
	s.nodeEntered()
	r, c, ok := FirstEmpty(g)
	if !ok {
		return constraints.IsValid(g)
	}
	for _, v := range [...]grid.Value{grid.Zero, grid.One} {
		g.Set(r, c, v)
		if constraints.IsConsistentAt(g, r, c) && forwardCheck(g, r, c) && s.backtrack(g) {
			return true
		}
		g.Set(r, c, grid.Empty)
		s.backtracked()
	}
	return false
}

// forwardCheck verifies that every empty cell sharing a row or column
// with (r,c) still has at least one possible value after the tentative
// assignment at (r,c).
func forwardCheck(g *grid.Grid, r, c int) bool {
	for _, nb := range Neighbors(g.Size(), r, c) {
		if g.Get(nb[0], nb[1]) != grid.Empty {
			continue
		}
		if len(constraints.PossibleValues(g, nb[0], nb[1])) == 0 {
			return false
		}
	}
	return true
}
