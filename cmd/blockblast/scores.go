package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockblast/internal/registry"
	"github.com/vovakirdan/tui-blockblast/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the specified mode.
Without a mode, a per-mode summary is shown.

Examples:
  blockblast scores
  blockblast scores classic
  blockblast scores stages --limit 25
  blockblast scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fail("unknown mode %q\nRun 'blockblast list' to see available modes.", gameID)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fail("clearing scores: %v", err)
		}
		logger.Info("scores cleared", "mode", gameID)
		fmt.Printf("Cleared all %s scores.\n", gameID)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating mode: %v", err)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockblast play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %-5s  %s\n", "Rank", "Player", "Score", "Stage", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		stage := "-"
		if entry.Stage > 0 {
			stage = fmt.Sprint(entry.Stage)
		}
		fmt.Printf("  %-4d  %-12s  %-10d  %-5s  %s\n",
			i+1, truncate(entry.Player, 12), entry.Score, stage, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Average: %.0f\n", stats.HighScore, stats.Rounds, stats.AvgScore)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	modes := make([]string, 0, len(all))
	for mode := range all {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	fmt.Printf("  %-10s  %-6s  %-10s  %-10s  %-10s  %s\n", "Mode", "Rounds", "Best", "Average", "Best stage", "Last played")
	for _, mode := range modes {
		s := all[mode]
		fmt.Printf("  %-10s  %-6d  %-10d  %-10.0f  %-10d  %s\n",
			mode, s.Rounds, s.HighScore, s.AvgScore, s.BestStage, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
