package grid

// State is the thin search wrapper around a Grid, carrying the flag that
// distinguishes the caller-supplied initial puzzle from a state produced
// partway through a solve. Solvers clone the given State once at the
// start of a solve, then mutate that copy's grid in place and undo
// assignments on backtrack.
type State struct {
	Grid    *Grid
	Initial bool
}

// NewState wraps g as an initial state (the puzzle as given by the
// caller, before any solver has touched it).
func NewState(g *Grid) *State {
	return &State{Grid: g, Initial: true}
}

// Solved reports whether the wrapped grid is completely filled.
func (s *State) Solved() bool {
	return s.Grid.IsFull()
}

// Clone returns a derived (non-initial) state wrapping a deep copy of the
// grid, ready for a solver to mutate during recursive descent.
func (s *State) Clone() *State {
	return &State{Grid: s.Grid.Clone(), Initial: false}
}
