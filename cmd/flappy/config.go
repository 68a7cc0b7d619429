package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the tuning the game would run with, after applying the config
search order (--config, ~/.flappy/configs/flappy.yaml,
./configs/flappy.yaml, built-in defaults). Redirect it to a file to start a custom config.

Examples:
  flappy config > ~/.flappy/configs/flappy.yaml
  flappy config --config ./my-flappy.yaml
  flappy config --defaults`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if flagDefaults {
			_, err := os.Stdout.Write(config.GetDefaultYAML(gameID))
			return err
		}

		cfg, err := config.LoadFlappy(flagConfig)
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}
