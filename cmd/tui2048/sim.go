package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/session"
)

var flagMoves string

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Replay a move sequence without a terminal UI",
	Long: `Play a sequence of moves on a seeded board and print every step.
The best score is not read or written.

Moves are either compact letters (u/d/l/r, so "l" is left) or words
separated by commas or spaces. Words may also be "undo" and "restart".

Examples:
  tui2048 sim --moves llur
  tui2048 sim --seed 7 --moves "left,left,undo,up"`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to play")
}

// simStep is one parsed token of a move sequence.
type simStep struct {
	undo    bool
	restart bool
	dir     grid.Direction
}

func parseMoves(s string) ([]simStep, error) {
	var tokens []string
	if strings.ContainsAny(s, ", ") {
		tokens = strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	} else {
		for _, r := range s {
			tokens = append(tokens, string(r))
		}
	}

	steps := make([]simStep, 0, len(tokens))
	for _, tok := range tokens {
		switch strings.ToLower(tok) {
		case "undo":
			steps = append(steps, simStep{undo: true})
		case "restart":
			steps = append(steps, simStep{restart: true})
		default:
			dir, err := grid.ParseDirection(tok)
			if err != nil {
				return nil, err
			}
			steps = append(steps, simStep{dir: dir})
		}
	}
	return steps, nil
}

func runSim(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = 1
	}

	steps, err := parseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logCfg := cfg.Log
	logCfg.File = "" // headless runs log to stderr
	logger, closer, err := logging.New(logCfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	sess := session.New(sessionConfig(cfg), nil, logger)
	replay(os.Stdout, sess, steps)
}

// replay plays steps on sess and writes every board to w.
func replay(w io.Writer, sess *session.Session, steps []simStep) {
	snap := sess.Snapshot()
	fmt.Fprintf(w, "seed %d\n%s\n\n", snap.Seed, snap.Grid)

	for i, st := range steps {
		switch {
		case st.undo:
			if sess.Undo() {
				fmt.Fprintf(w, "%d. undo\n", i+1)
			} else {
				fmt.Fprintf(w, "%d. undo (nothing to undo)\n", i+1)
			}
		case st.restart:
			sess.Restart()
			fmt.Fprintf(w, "%d. restart\n", i+1)
		default:
			out := sess.Move(st.dir)
			switch {
			case out.Moved:
				fmt.Fprintf(w, "%d. %s +%d\n", i+1, st.dir, out.ScoreDelta)
			case sess.Snapshot().GameOver:
				fmt.Fprintf(w, "%d. %s (game over)\n", i+1, st.dir)
			default:
				fmt.Fprintf(w, "%d. %s (no change)\n", i+1, st.dir)
			}
			for _, ev := range out.Events {
				fmt.Fprintf(w, "   %s\n", ev.Message)
			}
		}

		snap = sess.Snapshot()
		fmt.Fprintf(w, "%s\nscore %d\n\n", snap.Grid, snap.Score)
	}

	fmt.Fprintf(w, "state %s, score %d, max tile %d, moves %d\n",
		snap.State, snap.Score, snap.MaxTile, snap.Moves)
	fmt.Fprintf(w, "available: %s\n", availableMoves(snap.Grid))
}

// availableMoves lists the directions that would change g.
func availableMoves(g grid.Grid) string {
	var dirs []string
	for _, d := range grid.Directions {
		if engine.CanMove(g, d) {
			dirs = append(dirs, d.String())
		}
	}
	if len(dirs) == 0 {
		return "none"
	}
	return strings.Join(dirs, ", ")
}

