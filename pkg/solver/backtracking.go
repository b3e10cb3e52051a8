package solver

import (
	"github.com/eng618/binairo-csp/pkg/constraints"
	"github.com/eng618/binairo-csp/pkg/grid"
)

// Backtracking is the plain depth-first reference solver: first-empty
// variable selection, in-order value trial, undo on failure. Correct but
// slow on N >= 8; every other strategy in this package is a refinement
// of this skeleton.
type Backtracking struct {
	base
}

// NewBacktracking constructs a Backtracking solver.
func NewBacktracking() *Backtracking {
	return &Backtracking{}
}

func (s *Backtracking) Name() string { return "backtracking" }

func (s *Backtracking) Solve(st *grid.State) (*grid.State, bool) {
	working := st.Clone()
	if s.backtrack(working.Grid) {
		return working, true
	}
	return nil, false
}

func (s *Backtracking) SolveWithTiming(st *grid.State) (*grid.State, bool) {
	return s.timed(func() (*grid.State, bool) { return s.Solve(st) })
}

func (s *Backtracking) backtrack(g *grid.Grid) bool {
	s.nodeEntered()
	if g.IsFull() {
		return constraints.IsValid(g)
	}
	r, c, ok := FirstEmpty(g)
	if !ok {
		return constraints.IsValid(g)
	}
	for _, v := range [...]grid.Value{grid.Zero, grid.One} {
		g.Set(r, c, v)
		if constraints.IsConsistentAt(g, r, c) && s.backtrack(g) {
			return true
		}
		g.Set(r, c, grid.Empty)
		s.backtracked()
	}
	return false
}
