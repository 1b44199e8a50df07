package tetris

import (
	"context"
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/bot"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// RunResult is the outcome of one headless game.
type RunResult struct {
	Seed   int64
	Score  int
	Level  int
	Lines  int
	Pieces int
	// Capped is true when the run stopped at the piece limit rather than
	// at game over.
	Capped bool
}

// Autoplay plays one game with the autonomous player and no gravity
// timing, placing pieces back to back until game over, maxPieces pieces
// (0 means no limit) or ctx is done. It returns ctx.Err() on
// cancellation and any engine error other than game over.
func Autoplay(ctx context.Context, gc config.TetrisConfig, seed int64, maxPieces int) (res RunResult, err error) {
	board := engine.NewBoard(gc.Playfield.Rows(), gc.Playfield.Columns(), rand.New(rand.NewSource(seed)))
	player := newPlayer(gc.Search)

	res.Seed = seed
	defer func() {
		res.Score, res.Level, res.Lines = board.Score(), board.Level(), board.Lines()
	}()

	for maxPieces <= 0 || res.Pieces < maxPieces {
		if err = ctx.Err(); err != nil {
			return res, err
		}
		_, _, err = player.Play(board)
		switch {
		case err == nil:
			res.Pieces++
		case errors.Is(err, engine.ErrLockout):
			res.Pieces++
			return res, nil
		case errors.Is(err, bot.ErrNoMove):
			return res, nil
		default:
			return res, err
		}
	}
	res.Capped = true
	return res, nil
}
