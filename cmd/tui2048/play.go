package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  Mouse drag       - Slide tiles
  U                - Undo last move
  R/N              - New game
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Examples:
  tui2048 play
  tui2048 play --seed 42
  tui2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// runTUI starts the interactive program. Tests replace it.
var runTUI = tui.Run

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(loadConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one interactive session. Resources are released before it
// returns, so callers may exit on error.
func play(cfg config.Config) error {
	// The terminal belongs to the game, so without a log file lines are dropped.
	logger, closer, err := logging.New(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Play continues without persistence if the database is unavailable
	var best session.BestScoreStore
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open best score database", "path", cfg.Storage.Path, "error", err)
	} else {
		defer store.Close()
		best = storage.NewBestScore(store)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sess := session.New(sessionConfig(cfg), best, logger)

	err = runTUI(sess, tui.Options{
		Width:         width,
		Height:        height,
		DragThreshold: cfg.Input.DragThreshold,
		ToastDuration: time.Duration(cfg.UI.ToastSeconds * float64(time.Second)),
		Animate:       cfg.UI.Animate,
		Theme:         cfg.Theme,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("tui exited", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	snap := sess.Snapshot()
	logger.Info("session ended", "score", snap.Score, "best", snap.Best, "moves", snap.Moves)
	return nil
}
