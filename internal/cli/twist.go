package cli

import (
	"fmt"
	"os"

	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a solved cube and display the result",
	Long: `Twist applies a sequence of moves to a solved cube and shows the
resulting state. It does not solve anything; it is for exploring
algorithms and their effect on the cube.

Examples:
  cube twist "R U R' U'"
  cube twist "x2 R U2 R' U' R U' R'" --color`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves, err := cube.ParseMoves(args[0])
		if err != nil {
			fmt.Printf("Error parsing moves: %v\n", err)
			os.Exit(1)
		}

		c := cube.Solved()
		c.DoMoves(moves)

		useColor, _ := cmd.Flags().GetBool("color")
		fmt.Printf("Moves applied: %d\n\n", len(moves))
		fmt.Print(c.Display(useColor))
	},
}

func init() {
	twistCmd.Flags().BoolP("color", "c", false, "Use coloured output")
}
