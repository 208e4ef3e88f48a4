package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blockblast/internal/core"
	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast"
	"github.com/vovakirdan/tui-blockblast/internal/platform/tui"
	"github.com/vovakirdan/tui-blockblast/internal/registry"
	"github.com/vovakirdan/tui-blockblast/internal/storage"
)

var (
	flagStage  int
	flagResume bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. Without a mode the menu opens.

Controls:
  Arrows/WASD  - Move the cursor
  Tab, 1-3     - Pick a block
  Enter/Space  - Place the block (or fire an armed item)
  X / L        - Arm bomb / laser
  H            - Use hourglass (new batch)
  Esc          - Disarm item, or back to menu after game over
  R            - Restart (after game over)
  ?            - Show all controls
  Q/Ctrl+C     - Save the round and quit

Difficulty options:
  easy   - Gentler weight schedule, more helper blocks
  normal - Default schedule
  hard   - Starts one tier higher
  fixed  - No progression, stays at the starting tier

Examples:
  blockblast play classic
  blockblast play stages --stage 12
  blockblast play classic --resume
  blockblast play classic --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStage, "stage", 1, "First stage (stages mode)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the saved round for this mode")
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runMenu(cmd, args)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fail("unknown mode %q\nRun 'blockblast list' to see available modes.", gameID)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sel := tui.Selection{GameID: gameID, Resume: flagResume}
	if gameID == blockblast.IDStages {
		sel.Stage = max(flagStage, 1)
	}
	game, err := tui.StartSelection(sel)
	if err != nil {
		fail("%v", err)
	}

	if err := tui.Run(game, store, runtimeConfig(), sel.Resume, tui.WithModelLogger(logger)); err != nil {
		fail("%v", err)
	}
}

// runtimeConfig sizes the round to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Player:  flagPlayer,
	}
}

// openStore opens the scores database; play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
