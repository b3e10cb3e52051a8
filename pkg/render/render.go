// Package render pretty-prints a Binairo grid for the CLI: ASCII or
// Unicode borders, optional row/column coordinates, and optional
// color-highlighted violations. Adapted from the teacher's level
// renderer (border/legend drawing, ascii-vs-unicode style switch) for
// Binairo's plain 0/1/empty cell alphabet instead of vine glyphs.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/eng618/binairo-csp/pkg/grid"
	"github.com/eng618/binairo-csp/pkg/validator"
)

// Options controls how Grid is rendered.
type Options struct {
	// Style is "ascii" or "unicode"; anything else falls back to ascii.
	Style string
	// ShowCoords prints row/column indices around the border.
	ShowCoords bool
	// Violations, when non-nil and Color is set, highlights the listed
	// cells in red.
	Violations []validator.Violation
	// Color enables ANSI coloring of 0/1/violation cells.
	Color bool
}

// Grid writes g to w per opts.
func Grid(w io.Writer, g *grid.Grid, opts Options) {
	n := g.Size()
	violated := violatedSet(opts.Violations)

	empty, vbar, hbar, corner := glyphs(opts.Style)

	if opts.ShowCoords {
		_, _ = fmt.Fprint(w, "   ")
		for c := 0; c < n; c++ {
			_, _ = fmt.Fprintf(w, "%2d ", c)
		}
		_, _ = fmt.Fprintln(w)
	}

	printBorder(w, n, corner, hbar)

	for r := 0; r < n; r++ {
		if opts.ShowCoords {
			_, _ = fmt.Fprintf(w, "%2d ", r)
		} else {
			_, _ = fmt.Fprint(w, "   ")
		}
		_, _ = fmt.Fprint(w, vbar+" ")
		for c := 0; c < n; c++ {
			_, _ = fmt.Fprintf(w, "%2s ", cellGlyph(g, r, c, empty, violated, opts.Color))
		}
		_, _ = fmt.Fprintln(w, vbar)
	}

	printBorder(w, n, corner, hbar)
}

func glyphs(style string) (empty, vbar, hbar, corner string) {
	if style == "unicode" {
		return "·", "│", "─", "+"
	}
	return ".", "|", "-", "+"
}

func printBorder(w io.Writer, n int, corner, hbar string) {
	_, _ = fmt.Fprint(w, "   "+corner)
	for c := 0; c < n; c++ {
		_, _ = fmt.Fprint(w, hbar+hbar+hbar)
	}
	_, _ = fmt.Fprintln(w, corner)
}

func violatedSet(violations []validator.Violation) map[[2]int]bool {
	set := make(map[[2]int]bool, len(violations))
	for _, v := range violations {
		set[[2]int{v.Row, v.Col}] = true
	}
	return set
}

func cellGlyph(g *grid.Grid, r, c int, empty string, violated map[[2]int]bool, useColor bool) string {
	v := g.Get(r, c)
	var glyph string
	switch v {
	case grid.Empty:
		glyph = empty
	default:
		glyph = v.String()
	}
	if !useColor {
		return glyph
	}
	if violated[[2]int{r, c}] {
		return color.New(color.FgWhite, color.BgRed, color.Bold).Sprint(glyph)
	}
	switch v {
	case grid.Zero:
		return color.CyanString(glyph)
	case grid.One:
		return color.YellowString(glyph)
	default:
		return glyph
	}
}
