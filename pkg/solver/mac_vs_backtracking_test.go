package solver_test

import (
	"testing"

	"github.com/eng618/binairo-csp/pkg/generator"
	"github.com/eng618/binairo-csp/pkg/grid"
	"github.com/eng618/binairo-csp/pkg/solver"
)

// TestMACExploresNoMoreNodesThanBacktracking is the S5 scenario: on a
// difficult puzzle, MAC's arc-consistency maintenance should never need
// more search nodes than plain backtracking to find a solution.
// Lives in an external test package (rather than package solver) so it
// can import pkg/generator, which itself imports pkg/solver.
func TestMACExploresNoMoreNodesThanBacktracking(t *testing.T) {
	puzzle, err := generator.GenerateSeeded(8, generator.DifficultyHard, 2024)
	if err != nil {
		t.Fatalf("GenerateSeeded failed: %v", err)
	}

	mac := solver.NewMAC()
	_, ok := mac.SolveWithTiming(grid.NewState(puzzle.Clone()))
	if !ok {
		t.Fatal("MAC failed to solve a puzzle produced by the generator")
	}

	bt := solver.NewBacktracking()
	_, ok = bt.SolveWithTiming(grid.NewState(puzzle.Clone()))
	if !ok {
		t.Fatal("Backtracking failed to solve a puzzle produced by the generator")
	}

	// The generator does not guarantee a unique completion (spec's
	// generator design explicitly skips a uniqueness check), so MAC and
	// Backtracking may land on different valid solutions; only their
	// search effort is compared here.
	macNodes := mac.Stats().NodesExplored
	btNodes := bt.Stats().NodesExplored
	if macNodes > btNodes {
		t.Errorf("MAC explored %d nodes, Backtracking explored %d; MAC should never need more", macNodes, btNodes)
	}
}
