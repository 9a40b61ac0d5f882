// Command pickbench demonstrates the picker engine end to end against an
// in-memory module graph and a trivial always-satisfiable solver. It is not
// the CAD tool's real CLI front end (out of scope); it exists to exercise
// pkg/pick, pkg/predicate, pkg/numset and pkg/telemetry wired together.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "pickbench",
	Short:   "Demonstrates the part-picking engine against a toy module graph",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./partpick.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
