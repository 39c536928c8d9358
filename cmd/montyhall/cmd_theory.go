package main

import (
	"github.com/nvandessel/montyhall/internal/report"
	"github.com/spf13/cobra"
)

func newTheoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theory",
		Short: "Print the theoretical win probabilities",
		Long: `Print the exact win probabilities of both strategies for every configured
door count without running any simulation.

Examples:
  montyhall theory
  montyhall theory --doors 3,100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return report.WriteJSON(cmd.OutOrStdout(), report.NewDocument(cfg.Doors, nil))
			}
			return report.WriteTheory(cmd.OutOrStdout(), cfg.Doors)
		},
	}
}
