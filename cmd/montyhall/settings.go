package main

import (
	"fmt"

	"github.com/nvandessel/montyhall/internal/config"
	"github.com/nvandessel/montyhall/internal/montyhall"
	"github.com/spf13/cobra"
)

// loadConfig resolves the effective configuration: defaults, config file,
// environment, then command-line flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("doors") {
		cfg.Doors, _ = flags.GetIntSlice("doors")
	}
	if flags.Changed("reps") {
		cfg.Repetitions, _ = flags.GetIntSlice("reps")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if f := flags.Lookup("no-plot"); f != nil && f.Changed {
		noPlot, _ := flags.GetBool("no-plot")
		cfg.Plot.Enabled = !noPlot
	}
	if f := flags.Lookup("plot-dir"); f != nil && f.Changed {
		cfg.Plot.Dir, _ = flags.GetString("plot-dir")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newSimulator returns a deterministic simulator for a non-zero seed and an
// entropy-seeded one otherwise.
func newSimulator(seed uint64) *montyhall.Simulator {
	if seed == 0 {
		return montyhall.NewUnseeded()
	}
	return montyhall.NewSeeded(seed)
}
