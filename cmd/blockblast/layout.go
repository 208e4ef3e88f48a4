package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockblast/internal/config"
	bb "github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <stage>",
	Short: "Print a generated stage layout",
	Long: `Generate the obstacle layout for a stage and print it.
'#' marks an obstacle, '.' an empty cell.

Examples:
  blockblast layout 1
  blockblast layout 30 --seed 99`,
	Args: cobra.ExactArgs(1),
	Run:  runLayout,
}

func runLayout(_ *cobra.Command, args []string) {
	stage, err := strconv.Atoi(args[0])
	if err != nil || stage < 1 {
		fail("stage must be a positive number, got %q", args[0])
	}

	preset, _ := config.ParsePreset(flagDifficulty)
	cfg, err := config.Load(flagConfig, preset)
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	layout := bb.GenerateLayout(stage, cfg.Rows, cfg.Cols, cfg.Layout, bb.NewSource(seed))
	fmt.Printf("Stage %d - %d obstacles (target %d), seed %d\n\n",
		layout.Stage, layout.Count(), bb.TargetObstacles(stage, cfg.Layout), seed)
	fmt.Println(layout.String())
}
