package hint

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/binairo-csp/pkg/common"
	"github.com/eng618/binairo-csp/pkg/gridfile"
	"github.com/eng618/binairo-csp/pkg/validator"
)

var file string

// hintCmd represents the hint command
var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Suggest the next forced move in a Binairo grid file",
	Long: `Hint scans a grid file for the first empty cell whose domain has
collapsed to a single value and reports it, matching what an external
UI would offer a player as a "next move" suggestion.

Examples:
  binairo-csp hint --file puzzle.txt`,
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

		move, ok := validator.FindObviousMove(g)
		if !ok {
			common.Info("no forced move available")
			return nil
		}

		common.Info("row %d, col %d -> %s", move.Row, move.Col, move.Value)
		return nil
	},
}

func init() {
	hintCmd.Flags().StringVarP(&file, "file", "f", "", "path to the grid file to inspect")
}

// GetCommand returns the hint command for registration with root.
func GetCommand() *cobra.Command {
	return hintCmd
}
