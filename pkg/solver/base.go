// Package solver implements the family of Binairo CSP search strategies:
// plain Backtracking, Forward Checking, AC-3+Backtracking, AC-4+
// Backtracking, an MRV+Degree+LCV+Forward-Checking Heuristic solver, and
// MAC (arc consistency maintained after every assignment). All six share
// the variable/value ordering helpers and statistics bookkeeping defined
// here.
package solver

import (
	"time"

	"github.com/eng618/binairo-csp/pkg/constraints"
	"github.com/eng618/binairo-csp/pkg/grid"
)

// Stats holds the per-call counters every strategy reports. Reset at the
// start of every SolveWithTiming call.
type Stats struct {
	NodesExplored  int
	BacktrackCount int
	SolvingTime    time.Duration
	SolutionFound  bool
}

// Strategy is implemented by every search algorithm in this package.
type Strategy interface {
	// Name identifies the strategy for CLI output and test tables.
	Name() string
	// Solve attempts to complete state without resetting statistics.
	Solve(s *grid.State) (*grid.State, bool)
	// SolveWithTiming resets statistics, times the solve, and records
	// whether a solution was found.
	SolveWithTiming(s *grid.State) (*grid.State, bool)
	// Stats returns the statistics from the most recent SolveWithTiming.
	Stats() Stats
}

// base is embedded by every concrete strategy; it owns the Stats value
// and the counter-increment helpers every strategy calls during search.
type base struct {
	stats Stats
}

func (b *base) Stats() Stats {
	return b.stats
}

func (b *base) resetStats() {
	b.stats = Stats{}
}

func (b *base) nodeEntered() {
	b.stats.NodesExplored++
}

func (b *base) backtracked() {
	b.stats.BacktrackCount++
}

// timed runs solve, wrapping it with the reset/record-timing/record-result
// bookkeeping common to every strategy's SolveWithTiming.
func (b *base) timed(solve func() (*grid.State, bool)) (*grid.State, bool) {
	b.resetStats()
	start := time.Now()
	result, ok := solve()
	b.stats.SolvingTime = time.Since(start)
	b.stats.SolutionFound = ok
	return result, ok
}

// FirstEmpty returns the lexicographically first empty cell, or ok=false
// if the grid is full.
func FirstEmpty(g *grid.Grid) (r, c int, ok bool) {
	n := g.Size()
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if g.Get(r, c) == grid.Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// MRV returns the empty cell with the smallest domain (minimum remaining
// values). If any empty cell has an empty domain, that cell is returned
// immediately so the caller can detect the dead end without scanning
// further.
func MRV(g *grid.Grid) (r, c int, ok bool) {
	n := g.Size()
	bestR, bestC, bestSize := -1, -1, 3
	found := false
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if g.Get(i, j) != grid.Empty {
				continue
			}
			found = true
			size := len(constraints.PossibleValues(g, i, j))
			if size == 0 {
				return i, j, true
			}
			if size < bestSize {
				bestR, bestC, bestSize = i, j, size
			}
		}
	}
	if !found {
		return 0, 0, false
	}
	return bestR, bestC, true
}

// MRVWithDegree applies MRV and breaks ties by preferring the empty cell
// with the highest degree (most empty row/column neighbors).
func MRVWithDegree(g *grid.Grid) (r, c int, ok bool) {
	n := g.Size()
	bestR, bestC, bestSize, bestDeg := -1, -1, 3, -1
	found := false
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if g.Get(i, j) != grid.Empty {
				continue
			}
			found = true
			size := len(constraints.PossibleValues(g, i, j))
			if size == 0 {
				return i, j, true
			}
			deg := constraints.Degree(g, i, j)
			if size < bestSize || (size == bestSize && deg > bestDeg) {
				bestR, bestC, bestSize, bestDeg = i, j, size, deg
			}
		}
	}
	if !found {
		return 0, 0, false
	}
	return bestR, bestC, true
}

// OrderLCV sorts domain by ascending constraining count: the number of
// neighbor value-choices a tentative placement at (r,c) would eliminate,
// summed over every empty cell sharing the row or column.
func OrderLCV(g *grid.Grid, r, c int, domain []grid.Value) []grid.Value {
	if len(domain) < 2 {
		return domain
	}
	type scored struct {
		v     grid.Value
		score int
	}
	scores := make([]scored, len(domain))
	for i, v := range domain {
		scores[i] = scored{v: v, score: constrainingCount(g, r, c, v)}
	}
	// Simple insertion sort: domain is at most size 2, stable and clear.
	for i := 1; i < len(scores); i++ {
		j := i
		for j > 0 && scores[j-1].score > scores[j].score {
			scores[j-1], scores[j] = scores[j], scores[j-1]
			j--
		}
	}
	out := make([]grid.Value, len(scores))
	for i, s := range scores {
		out[i] = s.v
	}
	return out
}

// constrainingCount places v tentatively at (r,c) and sums
// 2 - len(PossibleValues(neighbor)) across every empty row/column
// neighbor, then restores the grid.
func constrainingCount(g *grid.Grid, r, c int, v grid.Value) int {
	original := g.Get(r, c)
	g.Set(r, c, v)
	defer g.Set(r, c, original)

	total := 0
	for _, nb := range Neighbors(g.Size(), r, c) {
		if g.Get(nb[0], nb[1]) != grid.Empty {
			continue
		}
		total += 2 - len(constraints.PossibleValues(g, nb[0], nb[1]))
	}
	return total
}
