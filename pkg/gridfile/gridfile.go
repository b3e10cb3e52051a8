// Package gridfile implements the plain-text Binairo grid file format
// described in spec.md §6: a size header followed by N rows of
// whitespace-separated tokens ("." | "0" | "1"), with an extended
// variant permitting "#"-prefixed comments and blank lines before the
// header. This is the "external collaborator" file format spec.md §1
// keeps outside the CSP core proper; it exists only to drive the CLI.
package gridfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eng618/binairo-csp/pkg/grid"
)

// Sentinel errors surfaced to the CLI, following the source solvers'
// convention of a small set of named errors (see e.g. rybkr/sudoku's
// internal/solver package) rather than ad hoc strings.
var (
	ErrInvalidSize = errors.New("gridfile: size must be an even integer >= 4")
	ErrParse       = errors.New("gridfile: parse error")
)

// Load reads a grid from r in the format documented above.
func Load(r io.Reader) (*grid.Grid, error) {
	scanner := bufio.NewScanner(r)

	size, err := readSize(scanner)
	if err != nil {
		return nil, err
	}

	g := grid.NewGrid(size)
	for row := 0; row < size; row++ {
		line, ok := nextContentLine(scanner)
		if !ok {
			return nil, fmt.Errorf("%w: missing row %d (expected %d rows)", ErrParse, row, size)
		}
		tokens := strings.Fields(line)
		if len(tokens) != size {
			return nil, fmt.Errorf("%w: row %d has %d tokens, want %d", ErrParse, row, len(tokens), size)
		}
		for col, tok := range tokens {
			v, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrParse, row, col, err)
			}
			g.Set(row, col, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return g, nil
}

// readSize consumes leading blank/comment lines, then parses the size
// header.
func readSize(scanner *bufio.Scanner) (int, error) {
	line, ok := nextContentLine(scanner)
	if !ok {
		return 0, fmt.Errorf("%w: empty input", ErrParse)
	}
	size, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: header %q is not an integer", ErrInvalidSize, line)
	}
	if size < 4 || size%2 != 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return size, nil
}

// nextContentLine returns the next non-blank, non-comment line, or
// ok=false at EOF.
func nextContentLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return line, true
	}
	return "", false
}

func parseToken(tok string) (grid.Value, error) {
	switch tok {
	case ".":
		return grid.Empty, nil
	case "0":
		return grid.Zero, nil
	case "1":
		return grid.One, nil
	default:
		return grid.Empty, fmt.Errorf("unknown token %q", tok)
	}
}

// Save writes g to w in the plain (non-commented) variant of the format.
func Save(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	n := g.Size()
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return err
	}
	for r := 0; r < n; r++ {
		row := g.Row(r)
		tokens := make([]string, len(row))
		for i, v := range row {
			tokens[i] = v.String()
		}
		if _, err := fmt.Fprintln(bw, strings.Join(tokens, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}
