// blockblast is a terminal block-placement puzzle on an 8x8 board.
//
// Usage:
//
//	blockblast list              - List available modes
//	blockblast play [mode]       - Play a mode, or pick one from the menu
//	blockblast menu              - Start the mode picker menu
//	blockblast serve             - Start SSH server for remote play
//	blockblast scores <mode>     - Show high scores for a mode
//	blockblast sim               - Run headless autoplay rounds
//	blockblast layout <stage>    - Print a generated stage layout
//	blockblast config            - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.blockblast/scores.db)
//	--config <path>      - Custom YAML configuration
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - Log level for the log file and server output
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockblast/internal/config"
	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast"
	"github.com/vovakirdan/tui-blockblast/internal/logging"
)

const (
	envDBPath = "BLOCKBLAST_DB"
	envConfig = "BLOCKBLAST_CONFIG"
	envPlayer = "BLOCKBLAST_PLAYER"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagPlayer     string

	logger = logging.Discard()
)

func main() {
	// A missing .env is normal.
	//nolint:errcheck
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockblast",
	Short: "Block Blast - fill rows and columns in your terminal",
	Long: `Block Blast is a block-placement puzzle played on an 8x8 board.
Place the three offered blocks anywhere they fit; full rows and columns
clear and score, consecutive clears build a combo, and the round ends
when no offered block fits.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run headless autoplay rounds
  layout   - Print a generated stage layout
  config   - Print the default configuration

Environment:
  BLOCKBLAST_DB, BLOCKBLAST_CONFIG, BLOCKBLAST_PLAYER and
  BLOCKBLAST_LOG_LEVEL may be set directly or in a .env file.

Examples:
  blockblast play classic
  blockblast play stages --stage 5
  blockblast menu
  blockblast serve --ssh :2222
  blockblast scores classic`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockblast/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom YAML configuration")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name recorded with scores")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}

// setup resolves environment fallbacks and configures the game package.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed("db") {
		if v := os.Getenv(envDBPath); v != "" {
			flagDBPath = v
		}
	}
	if !flags.Changed("config") {
		flagConfig = os.Getenv(envConfig)
	}
	if flagPlayer == "" {
		flagPlayer = defaultPlayer()
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	l, err := newLogger(cmd)
	if err != nil {
		return err
	}
	logger = l

	blockblast.SetLogger(logger)
	blockblast.SetConfigPath(flagConfig)
	blockblast.SetDifficultyPreset(preset)
	return nil
}

// newLogger writes to --log-file when given. Full-screen commands never
// log to the terminal; the others log to stderr.
func newLogger(cmd *cobra.Command) (*log.Logger, error) {
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		return logging.New(f, flagLogLevel, "blockblast")
	}
	switch cmd.Name() {
	case "play", "menu":
		return logging.Discard(), nil
	}
	return logging.New(os.Stderr, flagLogLevel, "blockblast")
}

func defaultPlayer() string {
	for _, k := range []string{envPlayer, "USER", "USERNAME"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return "local"
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
