package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/binairo-csp/pkg/common"
	"github.com/eng618/binairo-csp/pkg/gridfile"
	"github.com/eng618/binairo-csp/pkg/render"
	"github.com/eng618/binairo-csp/pkg/validator"
)

var file string

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val"},
	Short:   "Validate a Binairo grid file",
	Long: `Validate checks a grid file against the three Binairo rules
(no triplets, row/column balance, row/column uniqueness) and, if the
rules hold, asks the default solver whether the grid is solvable.

Examples:
  binairo-csp validate --file puzzle.txt
  binairo-csp val -f puzzle.txt -v`,
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

		common.Verbose("Validating %s (%dx%d)", file, g.Size(), g.Size())
		result := validator.Validate(g)

		if result.ConstraintsValid {
			common.Info("✓ constraints valid")
		} else {
			common.Error("constraint violations:")
			for _, v := range result.Violations {
				common.Info("  - %s", v)
			}
		}

		if result.Solvable {
			common.Info("✓ solvable")
		} else {
			common.Info("✗ not solvable")
		}

		if result.Solution != nil {
			render.Grid(cmd.OutOrStdout(), result.Solution, render.Options{Style: "unicode", Color: true})
		}

		if !result.ConstraintsValid || !result.Solvable {
			return fmt.Errorf("%s failed validation", file)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&file, "file", "f", "", "path to the grid file to validate")
}

// GetCommand returns the validate command for registration with root.
func GetCommand() *cobra.Command {
	return validateCmd
}
