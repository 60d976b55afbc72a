package cli

import (
	"fmt"
	"os"

	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show the cube state after an optional scramble",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}

		c := cube.Solved()
		if scramble != "" {
			moves, err := cube.ParseMoves(scramble)
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				os.Exit(1)
			}
			c.DoMoves(moves)
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Solved cube state:")
		}

		useColor, _ := cmd.Flags().GetBool("color")
		fmt.Print(c.Display(useColor))
	},
}

func init() {
	showCmd.Flags().BoolP("color", "c", false, "Use coloured output")
}
