package generator

// Difficulty presets bound to the empty-cell ratio passed to Generate,
// per spec.md §6's convenience bindings.
const (
	DifficultyEasy   = 0.3
	DifficultyMedium = 0.5
	DifficultyHard   = 0.7
)

const (
	minSize = 4

	minDifficulty = 0.1
	maxDifficulty = 0.9

	// maxSolutionAttempts bounds the seed+solve retry loop in
	// generateCompleteSolution; a seed that the default solver can't
	// complete triggers a full restart (new seed placement), never a
	// partial retry, per spec.md's tentative-placement-with-rollback
	// design note (§9).
	maxSolutionAttempts = 50

	// maxSeedTriesPerAttempt is the per-seed budget of random (r,c,v)
	// placements: a single attempt tries at most size/2 times this many
	// before giving up on reaching the target seed count, guarding against
	// pathological grids where few cells remain consistent.
	maxSeedTriesPerAttempt = 40
)
