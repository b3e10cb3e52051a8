package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/binairo-csp/cmd/generate"
	"github.com/eng618/binairo-csp/cmd/hint"
	"github.com/eng618/binairo-csp/cmd/render"
	"github.com/eng618/binairo-csp/cmd/solve"
	"github.com/eng618/binairo-csp/cmd/validate"
	"github.com/eng618/binairo-csp/pkg/common"
)

var (
	// Global flags
	verbose    bool
	workingDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "binairo-csp",
	Short: "Binairo/Takuzu constraint-satisfaction engine and CLI",
	Long: `binairo-csp is a CLI around a constraint-satisfaction engine for the
Binairo (Takuzu) puzzle: no-triplets, row/column balance, and row/column
uniqueness over an N x N grid of 0/1/empty cells.

It provides commands for:
  - Generating puzzles at a chosen size and difficulty
  - Solving a puzzle with a chosen strategy (backtracking, forward
    checking, AC-3, AC-4, heuristic, or MAC)
  - Validating a puzzle's rule-consistency and solvability
  - Suggesting the next forced move (hint)
  - Rendering a puzzle grid to the terminal`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		if workingDir != "" {
			common.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return err
			}
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory for grid file paths (default: current directory)")

	rootCmd.AddCommand(generate.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
	rootCmd.AddCommand(solve.GetCommand())
	rootCmd.AddCommand(hint.GetCommand())
	rootCmd.AddCommand(render.GetCommand())
}
