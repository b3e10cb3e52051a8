package solve

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eng618/binairo-csp/pkg/common"
	"github.com/eng618/binairo-csp/pkg/grid"
	"github.com/eng618/binairo-csp/pkg/gridfile"
	"github.com/eng618/binairo-csp/pkg/render"
	"github.com/eng618/binairo-csp/pkg/solver"
)

var (
	file     string
	strategy string
	listFlag bool
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a Binairo grid file with a chosen strategy",
	Long: `Solve loads a grid file and runs one of the six registered search
strategies against it: backtracking, forward-checking, ac3, ac4,
heuristic (the default), or mac.

Examples:
  binairo-csp solve --file puzzle.txt
  binairo-csp solve --file puzzle.txt --strategy mac -v
  binairo-csp solve --list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFlag {
			for _, info := range solver.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", info.Name, info.Description)
			}
			return nil
		}

		if file == "" {
			return fmt.Errorf("please provide --file (or --list)")
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

		strat, err := solver.Get(strings.ToLower(strategy))
		if err != nil {
			return err
		}

		common.Verbose("Solving %s with %s...", file, strat.Name())
		result, ok := strat.SolveWithTiming(grid.NewState(g))
		stats := strat.Stats()

		common.Info("strategy: %s", strat.Name())
		common.Info("nodes explored: %d  backtracks: %d  time: %s", stats.NodesExplored, stats.BacktrackCount, stats.SolvingTime)

		if !ok {
			common.Info("✗ no solution found")
			return fmt.Errorf("%s is not solvable", file)
		}

		common.Info("✓ solved")
		render.Grid(cmd.OutOrStdout(), result.Grid, render.Options{Style: "unicode", Color: true})
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&file, "file", "f", "", "path to the grid file to solve")
	solveCmd.Flags().StringVarP(&strategy, "strategy", "s", solver.DefaultStrategyName, "solver strategy: backtracking, forward-checking, ac3, ac4, heuristic, mac")
	solveCmd.Flags().BoolVar(&listFlag, "list", false, "list registered strategies and exit")
}

// GetCommand returns the solve command for registration with root.
func GetCommand() *cobra.Command {
	return solveCmd
}
