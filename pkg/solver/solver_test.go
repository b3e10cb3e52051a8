package solver

import (
	"testing"

	"github.com/eng618/binairo-csp/pkg/constraints"
	"github.com/eng618/binairo-csp/pkg/grid"
)

// puzzle4x4 has a unique completion; every strategy must reach it.
const puzzle4x4 = "" +
	"0.1." +
	".01." +
	"1.0." +
	".1.0"

func allStrategyNames() []string {
	return []string{"backtracking", "forward-checking", "ac3", "ac4", "heuristic", "mac"}
}

func TestAllStrategiesSolveSamePuzzle(t *testing.T) {
	for _, name := range allStrategyNames() {
		name := name
		t.Run(name, func(t *testing.T) {
			strategy, err := Get(name)
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", name, err)
			}
			g := grid.NewGridFromPattern(4, puzzle4x4)
			state := grid.NewState(g)
			result, ok := strategy.SolveWithTiming(state)
			if !ok {
				t.Fatalf("strategy %q failed to solve a solvable puzzle", name)
			}
			if !constraints.IsSolution(result.Grid) {
				t.Fatalf("strategy %q produced a grid that is not a valid solution", name)
			}
		})
	}
}

func TestStrategiesAgreeOnSolution(t *testing.T) {
	var reference *grid.Grid
	for _, name := range allStrategyNames() {
		strategy, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", name, err)
		}
		g := grid.NewGridFromPattern(4, puzzle4x4)
		result, ok := strategy.SolveWithTiming(grid.NewState(g))
		if !ok {
			t.Fatalf("strategy %q failed to solve", name)
		}
		if reference == nil {
			reference = result.Grid
			continue
		}
		if !reference.Equal(result.Grid) {
			t.Errorf("strategy %q disagreed with the reference solution (puzzle has a unique completion)", name)
		}
	}
}

func TestUnsolvablePuzzleReportsFalse(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.Zero)
	g.Set(0, 2, grid.Zero)
	g.Set(0, 3, grid.One)

	for _, name := range allStrategyNames() {
		strategy, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", name, err)
		}
		clone := g.Clone()
		_, ok := strategy.SolveWithTiming(grid.NewState(clone))
		if ok {
			t.Errorf("strategy %q reported success on a grid with a pre-existing triplet violation", name)
		}
	}
}

func TestStatsRecordSolutionFound(t *testing.T) {
	strategy, err := Get(DefaultStrategyName)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", DefaultStrategyName, err)
	}
	g := grid.NewGridFromPattern(4, puzzle4x4)
	_, ok := strategy.SolveWithTiming(grid.NewState(g))
	if !ok {
		t.Fatal("expected the default strategy to solve the puzzle")
	}
	stats := strategy.Stats()
	if !stats.SolutionFound {
		t.Error("Stats().SolutionFound should be true after a successful solve")
	}
	if stats.NodesExplored == 0 {
		t.Error("Stats().NodesExplored should be non-zero after a search")
	}
}

func TestMRVPrefersSmallestDomain(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.Zero)
	// (0,2) (triplet) and (0,3) (balance) now have domain {One} only; every
	// other empty cell has domain size 2. MRV keeps the first in row-major order.
	r, c, ok := MRV(g)
	if !ok {
		t.Fatal("MRV should find an empty cell")
	}
	if r != 0 || c != 2 {
		t.Errorf("MRV() = (%d,%d), want (0,2)", r, c)
	}
}
