package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or clear the best score",
	Long: `Display the stored best score, or clear it with --reset.

Examples:
  tui2048 best
  tui2048 best --reset
  tui2048 best --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored best score")
}

func runBest(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening best score database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	best := storage.NewBestScore(store)

	if flagReset {
		if err := best.Reset(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score cleared.")
		return
	}

	score, err := best.LoadBest()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error reading best score: %v\n", err)
		os.Exit(1)
	}

	if score == 0 {
		fmt.Println("No best score recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tui2048' to set one!")
		return
	}

	fmt.Printf("Best: %d\n", score)
	if at, err := best.UpdatedAt(); err == nil && !at.IsZero() {
		fmt.Printf("Set:  %s\n", at.Format("2006-01-02 15:04"))
	}
}
