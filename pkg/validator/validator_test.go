package validator

import (
	"testing"

	"github.com/eng618/binairo-csp/pkg/grid"
)

func TestValidateSolvablePuzzle(t *testing.T) {
	g := grid.NewGridFromPattern(4, ""+
		"0.1."+
		".01."+
		"1.0."+
		".1.0")
	result := Validate(g)
	if !result.ConstraintsValid {
		t.Error("expected the partial puzzle to satisfy the three rules")
	}
	if !result.Solvable {
		t.Error("expected the puzzle to be solvable")
	}
	if result.Solution == nil {
		t.Error("expected a non-nil solution when Solvable is true")
	}
}

func TestValidateReportsTripletViolation(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.Zero)
	g.Set(0, 2, grid.Zero)
	result := Validate(g)
	if result.ConstraintsValid {
		t.Error("expected a triplet violation to be reported")
	}
	if len(result.Violations) == 0 {
		t.Error("expected at least one violation message")
	}
}

func TestSuggestValueForcedCell(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.Zero)
	if got := SuggestValue(g, 0, 2); got != "1" {
		t.Errorf("SuggestValue(0,2) = %q, want %q", got, "1")
	}
}

func TestSuggestValueAmbiguousForFilledCell(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	if got := SuggestValue(g, 0, 0); got != "ambiguous" {
		t.Errorf("SuggestValue on a filled cell = %q, want ambiguous", got)
	}
}

func TestFindObviousMove(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.Zero)
	move, ok := FindObviousMove(g)
	if !ok {
		t.Fatal("expected a forced move")
	}
	if move.Row != 0 || move.Col != 2 || move.Value != grid.One {
		t.Errorf("FindObviousMove() = %+v, want {0 2 One}", move)
	}
}

func TestFindObviousMoveNoneOnFreshGrid(t *testing.T) {
	g := grid.NewGrid(4)
	_, ok := FindObviousMove(g)
	if ok {
		t.Error("a fresh, unconstrained grid should have no forced cell")
	}
}

func TestIsSolvableDoesNotMutateInput(t *testing.T) {
	g := grid.NewGridFromPattern(4, ""+
		"0.1."+
		".01."+
		"1.0."+
		".1.0")
	before := g.Clone()
	IsSolvable(g)
	if !g.Equal(before) {
		t.Error("IsSolvable must not mutate the grid it is given")
	}
}
