package main

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/montyhall/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration montyhall would run with after applying the config
file, MONTYHALL_* environment variables and command-line flags.

Configuration is read from ~/.montyhall/config.yaml unless --config is given.

Examples:
  montyhall config                  # Effective settings as YAML
  montyhall config --doors 3,7      # With flag overrides applied
  montyhall config path             # Default config file location`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), valueOrDefault(config.DefaultPath(), "(home directory unknown)"))
		},
	})

	return cmd
}

func valueOrDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
