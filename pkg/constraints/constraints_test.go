package constraints

import (
	"testing"

	"github.com/eng618/binairo-csp/pkg/grid"
)

func TestNoTripletsAtDetectsRowTriplet(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.Zero)
	g.Set(0, 2, grid.Zero)
	if NoTripletsAt(g, 0, 2) {
		t.Error("three equal consecutive cells in a row should violate NoTripletsAt")
	}
}

func TestNoTripletsAtAllowsAlternating(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.One)
	g.Set(0, 2, grid.Zero)
	if !NoTripletsAt(g, 0, 2) {
		t.Error("alternating values should not violate NoTripletsAt")
	}
}

func TestNoTripletsGlobalDetectsColumnTriplet(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.One)
	g.Set(1, 0, grid.One)
	g.Set(2, 0, grid.One)
	if NoTripletsGlobal(g) {
		t.Error("three equal consecutive cells in a column should fail NoTripletsGlobal")
	}
}

func TestRowBalanceRejectsOverfullRow(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.One)
	g.Set(0, 2, grid.Zero)
	g.Set(0, 3, grid.Zero)
	if RowBalance(g, 0) {
		t.Error("three zeros and one one in a size-4 row should violate balance")
	}
}

func TestRowBalanceRequiresExactSplitWhenFull(t *testing.T) {
	g := grid.NewGridFromPattern(4, "0101")
	if !RowBalance(g, 0) {
		t.Error("a full 2-2 split should satisfy balance")
	}
}

func TestUniqueRowsDetectsDuplicate(t *testing.T) {
	g := grid.NewGridFromPattern(4,
		"0110"+
			"1001"+
			"0110"+
			"1001")
	if UniqueRows(g) {
		t.Error("rows 0 and 2 (and 1, 3) are identical and fully filled; UniqueRows should fail")
	}
}

func TestUniqueColumnsDetectsDuplicate(t *testing.T) {
	g := grid.NewGridFromPattern(4,
		"0101"+
			"0101"+
			"1010"+
			"1010")
	if UniqueColumns(g) {
		t.Error("columns 0 and 2 (and 1, 3) are identical and fully filled; UniqueColumns should fail")
	}
}

func TestUniqueColumnsIgnoresPartialColumns(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.Zero)
	if !UniqueColumns(g) {
		t.Error("columns with empty cells should never trigger a uniqueness violation")
	}
}

func TestUniqueRowsIgnoresPartialRows(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(1, 0, grid.Zero)
	if !UniqueRows(g) {
		t.Error("rows with empty cells should never trigger a uniqueness violation")
	}
}

func TestIsConsistentAtRejectsTripletFormingMove(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.Zero)
	g.Set(0, 2, grid.Zero)
	if IsConsistentAt(g, 0, 2) {
		t.Error("completing a triplet should be inconsistent")
	}
}

func TestPossibleValuesNarrowsToOneWhenTripletThreatens(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(0, 0, grid.Zero)
	g.Set(0, 1, grid.Zero)
	values := PossibleValues(g, 0, 2)
	if len(values) != 1 || values[0] != grid.One {
		t.Errorf("PossibleValues(0,2) = %v, want [One]", values)
	}
	if g.Get(0, 2) != grid.Empty {
		t.Error("PossibleValues must restore the cell to Empty")
	}
}

func TestDegreeCountsEmptyRowAndColumnNeighbors(t *testing.T) {
	g := grid.NewGrid(4)
	g.Set(1, 1, grid.Zero)
	// (1,1) shares neither row 0 nor column 0 with (0,0), so it doesn't
	// count against either. Row 0 has 3 empties besides (0,0); column 0
	// has 3 empties besides (0,0).
	if d := Degree(g, 0, 0); d != 6 {
		t.Errorf("Degree(0,0) = %d, want 6", d)
	}
}

func TestIsSolutionRequiresFullAndValid(t *testing.T) {
	g := grid.NewGridFromPattern(4,
		"0110"+
			"1001"+
			"0011"+
			"1100")
	if !IsSolution(g) {
		t.Fatal("expected this fully-filled, rule-respecting grid to be a valid solution")
	}
	g.Set(0, 0, grid.One)
	if IsSolution(g) {
		t.Error("breaking row balance should invalidate the solution")
	}
}
