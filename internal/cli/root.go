package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A Roux first-block and CMLL solver",
	Long: `Cube finds first-block solutions and identifies CMLL corner cases
for the Roux method.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(serveCmd)
}
