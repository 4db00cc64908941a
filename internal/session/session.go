// Package session owns the state of one 2048 game: the current grid, the
// score, the best score and the undo history. It is the single writer of that
// state and knows nothing about terminals or input devices.
package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// BestScoreStore persists the best score between runs.
type BestScoreStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// Config tunes a session.
type Config struct {
	Seed            int64   // RNG seed, 0 picks one from the clock
	FourProbability float64 // chance a spawned tile is a 4
	UndoDepth       int     // number of moves that can be undone
}

// DefaultConfig returns the classic rules with single-level undo.
func DefaultConfig() Config {
	return Config{
		FourProbability: grid.DefaultFourProbability,
		UndoDepth:       1,
	}
}

// EventKind identifies a user-facing notification.
type EventKind int

const (
	EventWon EventKind = iota
	EventGameOver
)

// Event is a one-time notification raised by a move.
type Event struct {
	Kind    EventKind
	Message string
}

// Outcome reports what a call to Move did.
type Outcome struct {
	Moved      bool
	ScoreDelta int
	Events     []Event
}

// Session is a single continuous play.
type Session struct {
	cfg    Config
	seed   int64
	runID  string
	rng    *rand.Rand
	ids    grid.Sequence
	store  BestScoreStore
	logger *log.Logger

	grid     grid.Grid
	score    int
	best     int
	won      bool
	gameOver bool
	moves    int
	spawned  *grid.Pos
	history  *history
}

// New creates a session, loads the best score from store and seeds the grid
// with two tiles. store and logger may be nil.
func New(cfg Config, store BestScoreStore, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:     cfg,
		seed:    seed,
		runID:   uuid.NewString(),
		rng:     rand.New(rand.NewSource(seed)),
		store:   store,
		history: newHistory(cfg.UndoDepth),
	}
	s.logger = logger.With("run", s.runID)

	if store != nil {
		best, err := store.LoadBest()
		if err != nil {
			s.logger.Warn("could not load best score", "error", err)
		} else {
			s.best = best
		}
	}

	s.Restart()
	s.logger.Info("session started", "seed", seed, "best", s.best)
	return s
}

// Restart begins a fresh game. The best score is kept.
func (s *Session) Restart() {
	s.grid = grid.New()
	s.score = 0
	s.won = false
	s.gameOver = false
	s.moves = 0
	s.spawned = nil
	s.history.reset()

	s.spawn()
	s.spawn()
}

// spawn places one random tile. It is a no-op on a full grid.
func (s *Session) spawn() {
	sp, ok := grid.PickSpawn(s.grid, s.rng, s.cfg.FourProbability)
	if !ok {
		s.spawned = nil
		return
	}
	s.grid.Place(sp, s.ids.Next())
	pos := sp.Pos
	s.spawned = &pos
}

// Move slides the board in dir. It does nothing once the game is over.
func (s *Session) Move(dir grid.Direction) Outcome {
	if s.gameOver {
		return Outcome{}
	}

	prev := entry{grid: s.grid, score: s.score}
	res := engine.Resolve(s.grid, dir, &s.ids)

	if !res.Moved {
		var out Outcome
		if !grid.HasAnyLegalMove(s.grid) {
			out.Events = append(out.Events, s.enterGameOver())
		}
		return out
	}

	s.history.push(prev)
	s.grid = res.Grid
	s.score += res.ScoreDelta
	s.moves++

	out := Outcome{Moved: true, ScoreDelta: res.ScoreDelta}

	if res.ReachedWinValue && !s.won {
		s.won = true
		s.logger.Info("win value reached", "score", s.score, "moves", s.moves)
		out.Events = append(out.Events, Event{
			Kind:    EventWon,
			Message: "Congratulations! You've reached 2048!",
		})
	}

	s.spawn()

	if s.score > s.best {
		s.best = s.score
		s.saveBest()
	}

	if !grid.HasAnyLegalMove(s.grid) {
		out.Events = append(out.Events, s.enterGameOver())
	}

	s.logger.Debug("move", "dir", dir, "delta", res.ScoreDelta, "score", s.score)
	return out
}

func (s *Session) enterGameOver() Event {
	s.gameOver = true
	s.logger.Info("game over", "score", s.score, "max", s.grid.MaxValue(), "moves", s.moves)
	return Event{Kind: EventGameOver, Message: "Game Over!"}
}

// saveBest persists the best score. Failures are logged, play continues.
func (s *Session) saveBest() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveBest(s.best); err != nil {
		s.logger.Warn("could not save best score", "best", s.best, "error", err)
	}
}

// Undo restores the state before the last move. Returns false when there is
// nothing to undo.
func (s *Session) Undo() bool {
	prev, ok := s.history.pop()
	if !ok {
		return false
	}
	s.grid = prev.grid
	s.score = prev.score
	s.gameOver = false
	s.spawned = nil
	s.moves--
	s.logger.Debug("undo", "score", s.score)
	return true
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() grid.Grid {
	return s.grid
}

// Score returns the running score.
func (s *Session) Score() int {
	return s.score
}

// Best returns the best score seen so far.
func (s *Session) Best() int {
	return s.best
}
