package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "montyhall",
		Short: "Monte Carlo simulation of the Monty Hall problem with N doors",
		Long: `montyhall plays the Monty Hall game with N doors many times and compares
the "stay" and "switch" strategies against their theoretical win rates.

For every configured door count N and repetition count K it runs K games,
prints the empirical win rates next to 1/N and (N-1)/N, and plots them on a
log-scaled chart when plotting is available.

Examples:
  montyhall                                # Classic matrix from config
  montyhall --doors 3,10 --reps 100,10000  # Custom matrix
  montyhall --seed 42 --no-pause --json    # Reproducible, machine-readable
  montyhall theory --doors 3,4,5           # Theoretical table only`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSimulation,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.Bool("json", false, "Output as JSON (for scripts)")
	pf.String("config", "", "Config file (default ~/.montyhall/config.yaml)")
	pf.String("log-level", "", "Log level: info, debug, or trace")
	pf.IntSlice("doors", nil, "Door counts to simulate, overrides config")
	pf.IntSlice("reps", nil, "Repetition counts per door count, overrides config")
	pf.Uint64("seed", 0, "Random seed (0 seeds from entropy)")

	rootCmd.Flags().Bool("no-pause", false, "Exit without waiting for a key press")
	rootCmd.Flags().Bool("no-plot", false, "Skip chart rendering")
	rootCmd.Flags().String("plot-dir", "", "Directory for the chart image, overrides config")

	rootCmd.AddCommand(
		newVersionCmd(),
		newTheoryCmd(),
		newConfigCmd(),
	)

	return rootCmd
}
