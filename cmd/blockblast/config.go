package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockblast/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration. Save it, edit it and pass it
back with --config, or place it at ~/.blockblast/configs/blockblast.yaml.

With --check, the configuration selected by --config and --difficulty is
loaded and validated instead.

Examples:
  blockblast config > my.yaml
  blockblast config --check --config my.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the selected configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigCheck {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	preset, _ := config.ParsePreset(flagDifficulty)
	cfg, err := config.Load(flagConfig, preset)
	if err != nil {
		fail("%v", err)
	}

	source := config.Locate(flagConfig)
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Printf("Source: %s\n", source)
	fmt.Printf("Difficulty: %s\n", preset)
	fmt.Printf("Board: %dx%d\n", cfg.Rows, cfg.Cols)
	fmt.Printf("Tiers:\n")
	for _, t := range cfg.Tiers {
		fmt.Printf("  %-8s from score %-6d / stage %d\n", t.Name, t.MinScore, t.MinStage)
	}
	fmt.Printf("Items: %v\n", cfg.Items)
	fmt.Println("OK")
}
