package cli

import (
	"fmt"
	"os"

	"github.com/jgouly/cube-solver-suite/internal/roux"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Find first-block solutions for a scramble",
	Long: `Solve searches every DL-edge orientation for a Roux first block
and prints the solutions found, shortest overall first.

Use --headless for programmatic output (one "DL moves" line per result).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		headless, _ := cmd.Flags().GetBool("headless")
		best, _ := cmd.Flags().GetBool("best")
		dl, _ := cmd.Flags().GetString("dl")

		skipMask := uint32(0)
		if dl != "" {
			pos, ok := parseEdgePos(dl)
			if !ok {
				fmt.Printf("Unknown DL edge %q\n", dl)
				os.Exit(1)
			}
			skipMask = ^uint32(0) &^ (1 << uint(pos))
		}

		solutions, err := roux.SolveFirstBlock(scramble, skipMask)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing scramble: %v\n", err)
			}
			os.Exit(1)
		}

		if len(solutions) == 0 {
			if !headless {
				fmt.Println("No first block found within the search depth.")
			}
			os.Exit(1)
		}

		if best {
			solutions = solutions[:1]
		}

		for _, s := range solutions {
			if headless {
				fmt.Printf("%s %s\n", s.DL, s.Moves)
			} else {
				fmt.Printf("DL=%-2s  (%d moves)  %s\n", s.DL, s.Len, s.Moves)
			}
		}
	},
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output one \"DL moves\" line per result")
	solveCmd.Flags().Bool("best", false, "Only print the single shortest solution")
	solveCmd.Flags().String("dl", "", "Restrict the search to a single DL edge, e.g. --dl UF")
}
