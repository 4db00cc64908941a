// tui2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	tui2048                  - Play (same as "tui2048 play")
//	tui2048 play             - Play interactively
//	tui2048 sim --moves lurd - Replay a move sequence headlessly
//	tui2048 best [--reset]   - Show or clear the best score
//	tui2048 config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.tui2048/config.yaml, ./configs/tui2048.yaml)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.tui2048/tui2048.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/session"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 in your terminal",
	Long: `tui2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board to merge equal tiles and reach 2048. The best score is
kept between runs.

Available commands:
  play     - Play interactively (default)
  sim      - Replay a move sequence without a terminal UI
  best     - Show or clear the best score
  config   - Print the effective configuration

Examples:
  tui2048
  tui2048 --seed 7
  tui2048 sim --seed 7 --moves llur
  tui2048 best --reset`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value or time-based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to best score database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies command-line overrides.
// Flags win over environment variables, which win over files.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// sessionConfig maps the game section to session rules.
func sessionConfig(cfg config.Config) session.Config {
	return session.Config{
		Seed:            cfg.Game.Seed,
		FourProbability: cfg.Game.SpawnFourProbability,
		UndoDepth:       cfg.Game.UndoDepth,
	}
}
