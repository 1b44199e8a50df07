package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// StateType is the coarse state of the game.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the game for determinism tests.
type Snapshot struct {
	Tick     uint64
	Auto     bool
	Score    int
	Level    int
	Lines    int
	Pieces   int
	Grid     string
	Current  engine.Kind
	CurrentX int
	CurrentY int
	Next     engine.Kind
	State    StateType
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	cur := g.board.Current()
	s := g.State()
	return Snapshot{
		Tick:     g.tick,
		Auto:     g.auto,
		Score:    s.Score,
		Level:    s.Level,
		Lines:    s.Lines,
		Pieces:   g.pieces,
		Grid:     g.board.Grid().String(),
		Current:  cur.Kind,
		CurrentX: cur.X,
		CurrentY: cur.Y,
		Next:     g.board.Next().Kind,
		State:    state,
	}
}
