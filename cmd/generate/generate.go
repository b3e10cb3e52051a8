package generate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/binairo-csp/pkg/common"
	"github.com/eng618/binairo-csp/pkg/generator"
	"github.com/eng618/binairo-csp/pkg/grid"
	"github.com/eng618/binairo-csp/pkg/gridfile"
	"github.com/eng618/binairo-csp/pkg/ui"
)

var (
	size       int
	difficulty float64
	preset     string
	pattern    string
	seed       int64
	output     string
	overwrite  bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate a new Binairo puzzle",
	Long: `Generate a new Binairo puzzle by seeding random cells, completing
them into a full solution with the default solver, and removing cells
down to a target difficulty ratio.

Examples:
  binairo-csp generate --size 8 --difficulty 0.5
  binairo-csp gen -s 10 --preset hard --output puzzle.txt
  binairo-csp g --size 6 --seed 12345 -v`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if preset != "" {
			switch preset {
			case "easy":
				difficulty = generator.DifficultyEasy
			case "medium":
				difficulty = generator.DifficultyMedium
			case "hard":
				difficulty = generator.DifficultyHard
			default:
				return fmt.Errorf("invalid --preset %q (want easy, medium, or hard)", preset)
			}
		}

		common.Info("Generating %dx%d puzzle at difficulty %.2f...", size, size, difficulty)

		spinner := ui.NewSpinner("solving seed grid")
		spinner.Start()

		var g *grid.Grid
		var genErr error
		if pattern != "" {
			g, genErr = generator.GenerateWithPattern(size, pattern)
		} else {
			g, genErr = generator.GenerateSeeded(size, difficulty, seed)
		}
		spinner.Stop()

		if genErr != nil {
			return fmt.Errorf("generation failed: %w", genErr)
		}

		if output == "" {
			return gridfile.Save(os.Stdout, g)
		}

		if overwrite {
			if backup, err := common.BackupFile(output); err != nil {
				return fmt.Errorf("failed to back up %s: %w", output, err)
			} else if backup != "" {
				common.Verbose("Existing file backed up to %s", backup)
			}
		} else if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("%s already exists (use --overwrite to replace it)", output)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer f.Close()

		if err := gridfile.Save(f, g); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}

		common.Info("✓ Puzzle written to %s", output)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&size, "size", "s", 8, "grid size (even, >= 4)")
	generateCmd.Flags().Float64VarP(&difficulty, "difficulty", "d", generator.DifficultyMedium, "fraction of cells left empty, in [0.1, 0.9]")
	generateCmd.Flags().StringVar(&preset, "preset", "", "difficulty preset: easy, medium, or hard (overrides --difficulty)")
	generateCmd.Flags().StringVar(&pattern, "pattern", "", "build directly from a row-major 0/1/. pattern instead of generating")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	generateCmd.Flags().StringVarP(&output, "output", "o", "", "output grid file path (default: stdout)")
	generateCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite an existing output file (backs it up first)")
}

// GetCommand returns the generate command for registration with root.
func GetCommand() *cobra.Command {
	return generateCmd
}
