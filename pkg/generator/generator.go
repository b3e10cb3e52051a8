// Package generator synthesizes Binairo puzzles: seed a handful of
// random cells, let the default solver complete the grid into a full
// valid solution, then remove cells down to a target empty-cell ratio.
// Solution uniqueness is not verified (spec.md §9) — difficulty is
// expressed purely as an empty-cell ratio.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/eng618/binairo-csp/pkg/common"
	"github.com/eng618/binairo-csp/pkg/constraints"
	"github.com/eng618/binairo-csp/pkg/grid"
	"github.com/eng618/binairo-csp/pkg/solver"
)

// Generate produces an N x N puzzle at the given difficulty (fraction of
// cells left empty, in [0.1, 0.9]) using a time-based random seed.
func Generate(size int, difficulty float64) (*grid.Grid, error) {
	return GenerateSeeded(size, difficulty, 0)
}

// GenerateSeeded is Generate with an explicit RNG seed; seed == 0 selects
// a time-based seed. Passing the same non-zero seed reproduces the same
// puzzle, per spec.md §5's determinism guarantee.
func GenerateSeeded(size int, difficulty float64, seed int64) (*grid.Grid, error) {
	if size < minSize || size%2 != 0 {
		return nil, fmt.Errorf("generator: invalid size %d (must be even and >= %d)", size, minSize)
	}
	if difficulty < minDifficulty || difficulty > maxDifficulty {
		return nil, fmt.Errorf("generator: invalid difficulty %.3f (must be in [%.2f, %.2f])", difficulty, minDifficulty, maxDifficulty)
	}

	rng := newRNG(seed)
	solution, err := generateCompleteSolution(size, rng)
	if err != nil {
		return nil, err
	}
	puzzle := removeCells(solution, difficulty, rng)
	common.Verbose("generator: produced %dx%d puzzle at difficulty %.2f (%d empty cells)", size, size, difficulty, puzzle.CountEmpty())
	return puzzle, nil
}

// GenerateEasy, GenerateMedium and GenerateHard are convenience bindings
// to the three difficulty presets.
func GenerateEasy(size int) (*grid.Grid, error)   { return Generate(size, DifficultyEasy) }
func GenerateMedium(size int) (*grid.Grid, error) { return Generate(size, DifficultyMedium) }
func GenerateHard(size int) (*grid.Grid, error)   { return Generate(size, DifficultyHard) }

// GenerateWithPattern builds a size x size grid directly from a
// row-major pattern string ('0' -> Zero, '1' -> One, anything else ->
// Empty), bypassing seed+solve+remove entirely.
func GenerateWithPattern(size int, pattern string) (*grid.Grid, error) {
	if size < minSize || size%2 != 0 {
		return nil, fmt.Errorf("generator: invalid size %d (must be even and >= %d)", size, minSize)
	}
	return grid.NewGridFromPattern(size, pattern), nil
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// generateCompleteSolution seeds a handful of random cells and hands the
// grid to the default solver. If the solver fails to complete a given
// seed, the whole attempt restarts with a fresh seed placement (bounded
// by maxSolutionAttempts) rather than repairing the failed attempt.
func generateCompleteSolution(size int, rng *rand.Rand) (*grid.Grid, error) {
	strategy, err := solver.Get(solver.DefaultStrategyName)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	for attempt := 0; attempt < maxSolutionAttempts; attempt++ {
		g := seedGrid(size, rng)
		state := grid.NewState(g)
		solved, ok := strategy.SolveWithTiming(state)
		if ok {
			return solved.Grid, nil
		}
		common.Verbose("generator: seed attempt %d/%d did not solve, restarting", attempt+1, maxSolutionAttempts)
	}
	return nil, fmt.Errorf("generator: failed to synthesize a complete solution after %d attempts", maxSolutionAttempts)
}

// seedGrid places roughly size/2 random (row,col,value) triples. Each
// placement is tentative: it is written to the grid first and only
// rolled back if it breaks local consistency, matching the source
// generator's "place then roll back" semantics (spec.md §9) rather than
// validating a candidate before writing it.
func seedGrid(size int, rng *rand.Rand) *grid.Grid {
	g := grid.NewGrid(size)
	target := size / 2
	placed := 0
	for tries := 0; placed < target && tries < target*maxSeedTriesPerAttempt; tries++ {
		r, c := rng.Intn(size), rng.Intn(size)
		if g.Get(r, c) != grid.Empty {
			continue
		}
		v := grid.Zero
		if rng.Intn(2) == 1 {
			v = v.Opposite()
		}
		g.Set(r, c, v)
		if !constraints.IsConsistentAt(g, r, c) {
			g.Set(r, c, grid.Empty)
			continue
		}
		placed++
	}
	return g
}

// removeCells deep-copies the full solution, computes
// floor(N*N*difficulty) cells to clear, and clears that many positions
// chosen by shuffling the full position list.
func removeCells(solution *grid.Grid, difficulty float64, rng *rand.Rand) *grid.Grid {
	puzzle := solution.Clone()
	n := puzzle.Size()

	type pos struct{ r, c int }
	positions := make([]pos, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			positions = append(positions, pos{r, c})
		}
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	toRemove := int(float64(n*n) * difficulty)
	if toRemove > len(positions) {
		toRemove = len(positions)
	}
	for i := 0; i < toRemove; i++ {
		puzzle.Set(positions[i].r, positions[i].c, grid.Empty)
	}
	return puzzle
}
