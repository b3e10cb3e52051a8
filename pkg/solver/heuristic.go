package solver

import (
	"github.com/eng618/binairo-csp/pkg/constraints"
	"github.com/eng618/binairo-csp/pkg/grid"
)

// Heuristic combines MRV variable selection, Degree tie-breaking, LCV
// value ordering and Forward Checking. It keeps no separate domain
// store — PossibleValues is recomputed on demand — and is empirically
// the fastest general-purpose strategy on small N.
type Heuristic struct {
	base
}

// NewHeuristic constructs a Heuristic solver.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (s *Heuristic) Name() string { return "heuristic" }

func (s *Heuristic) Solve(st *grid.State) (*grid.State, bool) {
	working := st.Clone()
	if s.backtrack(working.Grid) {
		return working, true
	}
	return nil, false
}

func (s *Heuristic) SolveWithTiming(st *grid.State) (*grid.State, bool) {
	return s.timed(func() (*grid.State, bool) { return s.Solve(st) })
}

func (s *Heuristic) backtrack(g *grid.Grid) bool {
	s.nodeEntered()
	r, c, ok := MRVWithDegree(g)
	if !ok {
		return constraints.IsValid(g)
	}
	domain := constraints.PossibleValues(g, r, c)
	if len(domain) == 0 {
		return false
	}
	for _, v := range OrderLCV(g, r, c, domain) {
		g.Set(r, c, v)
		if constraints.IsConsistentAt(g, r, c) && forwardCheck(g, r, c) && s.backtrack(g) {
			return true
		}
		g.Set(r, c, grid.Empty)
		s.backtracked()
	}
	return false
}
