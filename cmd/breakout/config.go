package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration the game would run with, after the search
path and the difficulty preset are applied, as YAML. The output is a valid
config file.

Search order:
  --config path
  ~/.breakout/configs/breakout.yaml
  ./configs/breakout.yaml
  built-in defaults

Examples:
  breakout config
  breakout config --difficulty easy > ~/.breakout/configs/breakout.yaml
  breakout config --defaults`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults file")
	addConfigFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Resolve(flagConfig, flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
