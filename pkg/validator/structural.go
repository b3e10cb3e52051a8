package validator

import (
	"fmt"

	"github.com/eng618/binairo-csp/pkg/constraints"
	"github.com/eng618/binairo-csp/pkg/grid"
)

// Violation tags a single cell for an external UI: which rule it
// participates in breaking, in human-readable form.
type Violation struct {
	Row, Col int
	Message  string
}

// FindViolations enumerates every cell that breaks the triplet or balance
// rule: every position in a filled, fully-equal triplet window, and every
// filled cell belonging to an over-full row or column. Duplicate rows or
// columns (the uniqueness rule) are not tagged.
func FindViolations(g *grid.Grid) []Violation {
	var out []Violation
	out = append(out, tripletViolations(g)...)
	out = append(out, balanceViolations(g)...)
	return out
}

func tripletViolations(g *grid.Grid) []Violation {
	var out []Violation
	n := g.Size()
	seen := make(map[[2]int]bool)
	mark := func(r, c int, msg string) {
		key := [2]int{r, c}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Violation{Row: r, Col: c, Message: msg})
	}
	for r := 0; r < n; r++ {
		for c := 0; c+2 < n; c++ {
			a, b, d := g.Get(r, c), g.Get(r, c+1), g.Get(r, c+2)
			if a != grid.Empty && a == b && b == d {
				msg := fmt.Sprintf("triplet detected in row %d starting at column %d", r, c)
				mark(r, c, msg)
				mark(r, c+1, msg)
				mark(r, c+2, msg)
			}
		}
	}
	for c := 0; c < n; c++ {
		for r := 0; r+2 < n; r++ {
			a, b, d := g.Get(r, c), g.Get(r+1, c), g.Get(r+2, c)
			if a != grid.Empty && a == b && b == d {
				msg := fmt.Sprintf("triplet detected in column %d starting at row %d", c, r)
				mark(r, c, msg)
				mark(r+1, c, msg)
				mark(r+2, c, msg)
			}
		}
	}
	return out
}

func balanceViolations(g *grid.Grid) []Violation {
	var out []Violation
	n := g.Size()
	for r := 0; r < n; r++ {
		if constraints.RowBalance(g, r) {
			continue
		}
		for c := 0; c < n; c++ {
			if v := g.Get(r, c); v != grid.Empty {
				out = append(out, Violation{Row: r, Col: c, Message: fmt.Sprintf("balance violated in row %d", r)})
			}
		}
	}
	for c := 0; c < n; c++ {
		if constraints.ColumnBalance(g, c) {
			continue
		}
		for r := 0; r < n; r++ {
			if v := g.Get(r, c); v != grid.Empty {
				out = append(out, Violation{Row: r, Col: c, Message: fmt.Sprintf("balance violated in column %d", c)})
			}
		}
	}
	return out
}

// violationMessages collects the distinct rule-level messages (triplet /
// balance / duplicate row or column) for ValidationResult, independent of
// which cells they touch.
func violationMessages(g *grid.Grid) []string {
	var msgs []string
	if !constraints.NoTripletsGlobal(g) {
		msgs = append(msgs, "triplet detected")
	}
	n := g.Size()
	for r := 0; r < n; r++ {
		if !constraints.RowBalance(g, r) {
			msgs = append(msgs, fmt.Sprintf("balance violated in row %d", r))
		}
	}
	for c := 0; c < n; c++ {
		if !constraints.ColumnBalance(g, c) {
			msgs = append(msgs, fmt.Sprintf("balance violated in column %d", c))
		}
	}
	if !constraints.UniqueRows(g) {
		msgs = append(msgs, "duplicated row detected")
	}
	if !constraints.UniqueColumns(g) {
		msgs = append(msgs, "duplicated column detected")
	}
	return msgs
}
