package generator

import (
	"testing"

	"github.com/eng618/binairo-csp/pkg/constraints"
)

func TestGenerateSeededIsDeterministic(t *testing.T) {
	a, err := GenerateSeeded(6, DifficultyMedium, 42)
	if err != nil {
		t.Fatalf("GenerateSeeded failed: %v", err)
	}
	b, err := GenerateSeeded(6, DifficultyMedium, 42)
	if err != nil {
		t.Fatalf("GenerateSeeded failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("same seed should reproduce the same puzzle")
	}
}

func TestGenerateSeededDiffersAcrossSeeds(t *testing.T) {
	a, err := GenerateSeeded(6, DifficultyMedium, 1)
	if err != nil {
		t.Fatalf("GenerateSeeded failed: %v", err)
	}
	b, err := GenerateSeeded(6, DifficultyMedium, 2)
	if err != nil {
		t.Fatalf("GenerateSeeded failed: %v", err)
	}
	if a.Equal(b) {
		t.Error("different seeds should (almost always) produce different puzzles")
	}
}

func TestGeneratePuzzleIsConsistent(t *testing.T) {
	g, err := Generate(8, DifficultyMedium)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !constraints.IsValid(g) {
		t.Error("a generated puzzle (even partially filled) must already satisfy the three Binairo rules")
	}
}

func TestGenerateRespectsDifficultyRatio(t *testing.T) {
	g, err := Generate(8, DifficultyHard)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	n := g.Size()
	want := int(float64(n*n) * DifficultyHard)
	if g.CountEmpty() != want {
		t.Errorf("CountEmpty() = %d, want %d empty cells at difficulty %.2f", g.CountEmpty(), want, DifficultyHard)
	}
}

func TestGenerateRejectsInvalidSize(t *testing.T) {
	if _, err := Generate(5, DifficultyMedium); err == nil {
		t.Error("expected an error for an odd size")
	}
	if _, err := Generate(2, DifficultyMedium); err == nil {
		t.Error("expected an error for a size below the minimum")
	}
}

func TestGenerateRejectsInvalidDifficulty(t *testing.T) {
	if _, err := Generate(8, 0.0); err == nil {
		t.Error("expected an error for a difficulty below the minimum")
	}
	if _, err := Generate(8, 1.0); err == nil {
		t.Error("expected an error for a difficulty above the maximum")
	}
}

func TestGenerateWithPattern(t *testing.T) {
	g, err := GenerateWithPattern(4, "0110100101101001")
	if err != nil {
		t.Fatalf("GenerateWithPattern failed: %v", err)
	}
	if g.Size() != 4 {
		t.Errorf("Size() = %d, want 4", g.Size())
	}
}

func TestPresetsMapToDistinctDifficulties(t *testing.T) {
	if DifficultyEasy >= DifficultyMedium || DifficultyMedium >= DifficultyHard {
		t.Error("difficulty presets should be strictly increasing: easy < medium < hard")
	}
}
