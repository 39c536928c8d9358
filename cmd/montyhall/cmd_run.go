package main

import (
	"github.com/nvandessel/montyhall/internal/chart"
	"github.com/nvandessel/montyhall/internal/experiment"
	"github.com/nvandessel/montyhall/internal/logging"
	"github.com/nvandessel/montyhall/internal/report"
	"github.com/spf13/cobra"
)

// runSimulation is the root command: theory table, streamed results, chart,
// then a key-press pause.
func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	noPause, _ := cmd.Flags().GetBool("no-pause")
	out := cmd.OutOrStdout()

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	logger.Debug("starting simulation",
		"doors", cfg.Doors, "repetitions", cfg.Repetitions,
		"seed", cfg.Seed, "plot", cfg.Plot.Enabled)

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	sim := newSimulator(cfg.Seed)
	sim.SetLogger(logger)

	var observer experiment.Observer
	if !jsonOut {
		if err := report.WriteTheory(out, cfg.Doors); err != nil {
			return err
		}
		observer = report.NewConsole(out)
	}

	runner := experiment.NewRunner(sim, observer)
	runner.SetLogger(logger)
	set, err := runner.Run(ctx, cfg.Doors, cfg.Repetitions)
	if err != nil {
		return err
	}

	var renderer chart.Renderer = chart.Disabled{}
	if cfg.Plot.Enabled {
		renderer = chart.NewPlotRenderer(cfg.Plot.Dir)
	}

	// Keep stdout pure JSON when --json is set.
	msgOut := out
	if jsonOut {
		msgOut = cmd.ErrOrStderr()
	}
	plotPath, _ := chart.Plot(renderer, set, msgOut, logger)

	if jsonOut {
		doc := report.NewDocument(cfg.Doors, set)
		doc.Plot = plotPath
		return report.WriteJSON(out, doc)
	}

	if noPause {
		return nil
	}
	return waitForKey(cmd.InOrStdin(), out)
}
