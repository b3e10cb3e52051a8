package solver

import (
	"github.com/eng618/binairo-csp/pkg/constraints"
	"github.com/eng618/binairo-csp/pkg/grid"
)

// AC3 pre-processes the grid with the AC-3 arc-consistency algorithm,
// commits any cell whose domain collapses to a singleton, then
// backtracks over the remaining, domain-reduced cells.
type AC3 struct {
	base
}

// NewAC3 constructs an AC3 solver.
func NewAC3() *AC3 {
	return &AC3{}
}

func (s *AC3) Name() string { return "ac3" }

func (s *AC3) Solve(st *grid.State) (*grid.State, bool) {
	working := st.Clone()
	g := working.Grid
	ds := NewDomainSet(g)
	if !propagateAC3(g, ds, allArcs(g.Size())) {
		return nil, false
	}
	commitSingletons(g, ds)
	if s.domainBacktrack(g, ds) {
		return working, true
	}
	return nil, false
}

func (s *AC3) SolveWithTiming(st *grid.State) (*grid.State, bool) {
	return s.timed(func() (*grid.State, bool) { return s.Solve(st) })
}

// revise implements AC-3's arc-revision step: shrink D(arc.Row,arc.Col)
// to the values that still have at least one supporting value in
// D(arc.NRow,arc.NCol). Reports whether the domain changed and whether
// it was wiped out entirely.
func revise(g *grid.Grid, ds *DomainSet, arc Arc) (changed, wipeout bool) {
	di := ds.Get(arc.Row, arc.Col)
	dj := ds.Get(arc.NRow, arc.NCol)
	keep := maskNone
	for _, x := range di.Values() {
		for _, y := range dj.Values() {
			if constraints.IsConsistent(g, arc.Row, arc.Col, x, arc.NRow, arc.NCol, y) {
				keep |= maskFor(x)
				break
			}
		}
	}
	if keep == di {
		return false, false
	}
	ds.Set(arc.Row, arc.Col, keep)
	return true, keep == maskNone
}

// propagateAC3 drains the arc queue, revising each popped arc and
// re-enqueueing incident arcs whenever a domain shrinks. Returns false on
// domain wipeout ("no solution"), true once the queue empties.
func propagateAC3(g *grid.Grid, ds *DomainSet, queue []Arc) bool {
	n := g.Size()
	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		changed, wipeout := revise(g, ds, arc)
		if wipeout {
			return false
		}
		if changed {
			queue = append(queue, arcsInto(n, arc.Row, arc.Col)...)
		}
	}
	return true
}

// commitSingletons writes every cell whose domain has collapsed to a
// single value into the grid.
func commitSingletons(g *grid.Grid, ds *DomainSet) {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g.Get(r, c) != grid.Empty {
				continue
			}
			m := ds.Get(r, c)
			if m.Len() == 1 {
				g.Set(r, c, m.Values()[0])
			}
		}
	}
}

// domainBacktrack is plain first-empty backtracking restricted to the
// candidate values left in each cell's domain, instead of always trying
// both {0,1}.
func (s *AC3) domainBacktrack(g *grid.Grid, ds *DomainSet) bool {
	s.nodeEntered()
	r, c, ok := FirstEmpty(g)
	if !ok {
		return constraints.IsValid(g)
	}
	for _, v := range ds.Get(r, c).Values() {
		g.Set(r, c, v)
		if constraints.IsConsistentAt(g, r, c) && s.domainBacktrack(g, ds) {
			return true
		}
		g.Set(r, c, grid.Empty)
		s.backtracked()
	}
	return false
}
