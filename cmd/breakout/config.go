package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the search
order and the difficulty preset are applied. The output is valid input
for --config.

Search order:
  --config path
  ~/.arcade/configs/breakout.yaml
  ./configs/breakout.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
