package gridfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/eng618/binairo-csp/pkg/grid"
)

func TestLoadParsesValidGrid(t *testing.T) {
	input := "4\n0 . 1 .\n. 0 1 .\n1 . 0 .\n. 1 . 0\n"
	g, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if g.Size() != 4 {
		t.Errorf("Size() = %d, want 4", g.Size())
	}
	if g.Get(0, 0) != grid.Zero {
		t.Errorf("Get(0,0) = %v, want Zero", g.Get(0, 0))
	}
	if g.Get(0, 1) != grid.Empty {
		t.Errorf("Get(0,1) = %v, want Empty", g.Get(0, 1))
	}
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	input := "# a comment\n\n4\n# row 0\n0 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n"
	g, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if g.Size() != 4 {
		t.Errorf("Size() = %d, want 4", g.Size())
	}
}

func TestLoadRejectsOddSize(t *testing.T) {
	_, err := Load(strings.NewReader("5\n"))
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestLoadRejectsMissingRows(t *testing.T) {
	_, err := Load(strings.NewReader("4\n0 1 0 1\n"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse for a truncated grid, got %v", err)
	}
}

func TestLoadRejectsUnknownToken(t *testing.T) {
	_, err := Load(strings.NewReader("4\nx 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse for an unknown token, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	original := grid.NewGridFromPattern(4, "0110100101101001")
	original.Set(1, 1, grid.Empty)

	var buf bytes.Buffer
	if err := Save(&buf, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !original.Equal(loaded) {
		t.Error("round-tripping through Save/Load should preserve the grid exactly")
	}
}
