package render

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/binairo-csp/pkg/gridfile"
	pkgrender "github.com/eng618/binairo-csp/pkg/render"
	"github.com/eng618/binairo-csp/pkg/validator"
)

var (
	file       string
	styleFlag  string
	coordsFlag bool
	colorFlag  bool
	checkFlag  bool
)

// RenderCmd renders a grid file to the terminal for visual inspection.
var RenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a grid file to the terminal (ASCII/Unicode)",
	Long: `Render a grid file to the terminal for quick visual inspection.

Examples:
  binairo-csp render --file puzzle.txt
  binairo-csp render --file puzzle.txt --style ascii --coords
  binairo-csp render --file puzzle.txt --check
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if file == "" {
			return fmt.Errorf("please provide --file")
		}

		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file, err)
		}
		defer f.Close()

		g, err := gridfile.Load(f)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}

		if styleFlag == "" {
			styleFlag = "unicode"
		}

		var violations []validator.Violation
		if checkFlag {
			violations = validator.FindViolations(g)
		}

		pkgrender.Grid(cmd.OutOrStdout(), g, pkgrender.Options{
			Style:      styleFlag,
			ShowCoords: coordsFlag,
			Violations: violations,
			Color:      colorFlag,
		})
		return nil
	},
}

func init() {
	RenderCmd.Flags().StringVarP(&file, "file", "f", "", "path to the grid file to render")
	RenderCmd.Flags().StringVarP(&styleFlag, "style", "s", "unicode", "render style: ascii or unicode")
	RenderCmd.Flags().BoolVarP(&coordsFlag, "coords", "c", false, "show axis coordinates")
	RenderCmd.Flags().BoolVar(&colorFlag, "color", true, "colorize cells and highlighted violations")
	RenderCmd.Flags().BoolVar(&checkFlag, "check", false, "highlight rule violations in red")
}

// GetCommand returns the render command for registration with root.
func GetCommand() *cobra.Command {
	return RenderCmd
}
