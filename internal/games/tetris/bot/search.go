package bot

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

var (
	// ErrNoMove means no rotation and column put the current piece on the
	// board. Drivers treat it like a lockout.
	ErrNoMove = errors.New("bot: no valid placement")

	// ErrInvalidMove means a move handed to Apply does not fit the board.
	ErrInvalidMove = errors.New("bot: move does not fit")
)

// Weights scale the cost features, in order: holes created, bumpiness,
// drop height, lines cleared.
type Weights [4]float64

// DefaultWeights are the tuned weights of the reference player.
var DefaultWeights = Weights{3.0, 0.5, 0.3, 8.5}

// Cost is lower for better placements.
func (w Weights) Cost(holesCreated, bumpiness, dropHeight, lines int) float64 {
	return float64(holesCreated)*w[0] +
		float64(bumpiness)*w[1] -
		float64(dropHeight)*w[2] -
		float64(lines)*w[3]
}

// Move is a placement: clockwise turns from the piece's orientation at
// search time, and the column of the matrix's left edge. The piece is
// dropped from row 0.
type Move struct {
	Rotation int
	X        int
	Cost     float64
}

func (m Move) String() string {
	return fmt.Sprintf("rot=%d x=%d cost=%.2f", m.Rotation, m.X, m.Cost)
}

// Engine searches placements for the current piece of a board.
type Engine struct {
	Weights Weights

	// Lookahead adds the lines the next piece would clear, dropped from
	// its spawn column onto the resulting grid, to each candidate.
	Lookahead bool
}

// New returns an engine with the given weights and lookahead enabled.
func New(w Weights) *Engine {
	return &Engine{Weights: w, Lookahead: true}
}

// candidate holds the features measured for one placement.
type candidate struct {
	holesCreated int
	bumpiness    int
	dropHeight   int
	lines        int
}

// BestMove evaluates every orientation of the current piece at every
// column from -1 to the last column, dropped from row 0, and returns the
// cheapest. Ties keep the first placement seen, scanning rotations then
// columns in ascending order. It reports false when no placement fits.
//
// The board is read, never written: each trial runs on a grid clone.
func (e *Engine) BestMove(b *engine.Board) (Move, bool) {
	g := b.Grid()
	holesBefore := Holes(g)
	next := b.Next()

	best := Move{Cost: math.Inf(1)}
	found := false

	p := b.Current()
	for rotation := 0; rotation < 4; rotation++ {
		if rotation > 0 {
			p.Rotate()
		}
		for x := -1; x < g.Columns(); x++ {
			p.X, p.Y = x, 0
			c, ok := e.evaluate(g, p, next, holesBefore)
			if !ok {
				continue
			}
			cost := e.Weights.Cost(c.holesCreated, c.bumpiness, c.dropHeight, c.lines)
			if cost < best.Cost {
				best = Move{Rotation: rotation, X: x, Cost: cost}
				found = true
			}
		}
	}
	if !found {
		return Move{}, false
	}
	return best, true
}

func (e *Engine) evaluate(g engine.Grid, p, next engine.Piece, holesBefore int) (candidate, bool) {
	if !g.Fits(p, 0, 0) {
		return candidate{}, false
	}
	p.Y = g.RestingY(p)

	trial := g.Clone()
	if err := trial.Place(p); err != nil {
		return candidate{}, false
	}

	c := candidate{
		holesCreated: Holes(trial) - holesBefore,
		dropHeight:   p.Y,
	}
	c.lines = trial.ClearFull()
	c.bumpiness = Bumpiness(trial)
	if e.Lookahead {
		c.lines += engine.SimulateDrop(trial, next)
	}
	return c, true
}

// Apply turns the current piece m.Rotation times clockwise, moves it to
// column m.X on row 0, hard drops it and brings in the next piece. It
// returns the lines cleared, ErrInvalidMove if the placement does not fit,
// or engine.ErrLockout if the next piece cannot spawn.
func Apply(b *engine.Board, m Move) (int, error) {
	p := b.Current()
	for i := 0; i < m.Rotation; i++ {
		p.Rotate()
	}
	p.X, p.Y = m.X, 0
	if !b.IsValidMove(p, 0, 0) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidMove, m)
	}
	b.SetCurrent(p)
	return b.HardDrop()
}

// Play searches and applies the best move for the current piece. It
// returns ErrNoMove when nothing fits.
func (e *Engine) Play(b *engine.Board) (Move, int, error) {
	m, ok := e.BestMove(b)
	if !ok {
		return Move{}, 0, ErrNoMove
	}
	lines, err := Apply(b, m)
	return m, lines, err
}
