package cli

import (
	"fmt"
	"os"

	"github.com/jgouly/cube-solver-suite/internal/algorithms"
	"github.com/jgouly/cube-solver-suite/internal/cube"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [scramble]",
	Short: "Identify the CMLL case after an optional scramble",
	Long: `Identify applies scramble to a solved cube (assuming the first
block is already solved) and looks up which named CMLL case the
corners present.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := cube.Solved()
		if len(args) > 0 {
			moves, err := cube.ParseMoves(args[0])
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				os.Exit(1)
			}
			c.DoMoves(moves)
		}

		alg, ok := algorithms.IdentifyCMLL(c)
		if !ok {
			fmt.Println("No known CMLL case matches this corner arrangement.")
			os.Exit(1)
		}

		fmt.Printf("Case:       %s (%s)\n", alg.Name, alg.CaseID)
		fmt.Printf("Moves:      %s (%d moves)\n", alg.Moves, alg.MoveCount)
		if alg.Description != "" {
			fmt.Printf("Looks like:  %s\n", alg.Description)
		}
		if alg.Recognition != "" {
			fmt.Printf("Recognise:  %s\n", alg.Recognition)
		}
		if alg.Mirror != "" {
			fmt.Printf("Mirror:     %s\n", alg.Mirror)
		}
	},
}
