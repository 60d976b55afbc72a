package cli

import (
	"fmt"

	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [moves]",
	Short: "Optimize a sequence of moves",
	Long: `Optimize combines consecutive moves of the same movement and drops
cancellations, useful for cleaning up a solution before executing it.

Examples:
  cube optimize "R R"      # R2
  cube optimize "R R'"     # (empty - moves cancel)
  cube optimize "R R R"    # R'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := cube.ParseMoves(args[0])
		if err != nil {
			return fmt.Errorf("parsing moves: %w", err)
		}

		optimized := cube.OptimizeMoves(moves)

		fmt.Printf("Original:  %s (%d moves)\n", args[0], len(moves))
		if len(optimized) == 0 {
			fmt.Println("Optimized: (empty - all moves cancel out)")
		} else {
			fmt.Printf("Optimized: %s (%d moves)\n", cube.FormatMoves(optimized), len(optimized))
		}

		if saved := len(moves) - len(optimized); saved > 0 {
			fmt.Printf("Saved %d move(s)\n", saved)
		}

		return nil
	},
}
