package session

import "github.com/vovakirdan/tui-2048/internal/grid"

// State is the coarse session state.
type State string

const (
	StatePlaying  State = "playing"
	StateWon      State = "won" // still playing, win already signalled
	StateGameOver State = "game_over"
)

// Snapshot is a read-only view of the session for rendering and replay.
type Snapshot struct {
	RunID    string
	Seed     int64
	Grid     grid.Grid
	Score    int
	Best     int
	MaxTile  int
	Moves    int
	Won      bool
	GameOver bool
	CanUndo  bool
	Spawned  *grid.Pos // tile placed by the last accepted move, if any
	State    State
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.gameOver:
		state = StateGameOver
	case s.won:
		state = StateWon
	}

	var spawned *grid.Pos
	if s.spawned != nil {
		p := *s.spawned
		spawned = &p
	}

	return Snapshot{
		RunID:    s.runID,
		Seed:     s.seed,
		Grid:     s.grid,
		Score:    s.score,
		Best:     s.best,
		MaxTile:  s.grid.MaxValue(),
		Moves:    s.moves,
		Won:      s.won,
		GameOver: s.gameOver,
		CanUndo:  s.history.len() > 0,
		Spawned:  spawned,
		State:    state,
	}
}
