// Package tetris adapts the falling-block engine and the autonomous player
// to the registry.Game contract: gravity timing, input routing,
// the autonomous toggle, game-over handling and rendering.
package tetris

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/bot"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Game IDs.
const (
	IDManual = "tetris"
	IDAuto   = "tetris_auto"
)

// Game implements registry.Game.
type Game struct {
	startAuto bool
	auto      bool
	everAuto  bool

	cfg   config.TetrisConfig
	board *engine.Board
	bot   *bot.Engine
	rng   *rand.Rand

	tick      uint64
	tickRate  int
	tickMS    float64
	elapsedMS float64
	pieces    int

	lastMove    bot.Move
	hasLastMove bool

	screenW  int
	screenH  int
	gameOver bool
	paused   bool
	tooSmall bool
}

var configPath string

// SetConfigPath sets the YAML file read on the next Reset. Empty means the
// default search order.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game that starts under manual control.
func New() *Game {
	return &Game{}
}

// NewAuto creates a game that starts under the autonomous player.
func NewAuto() *Game {
	return &Game{startAuto: true}
}

func init() {
	registry.Register(IDManual, func() registry.Game { return New() })
	registry.Register(IDAuto, func() registry.Game { return NewAuto() })
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.startAuto {
		return IDAuto
	}
	return IDManual
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.startAuto {
		return "Tetris (Autonomous)"
	}
	return "Tetris"
}

// Reset starts a new game. An unreadable config file falls back to the
// built-in defaults; the CLI validates --config before getting here.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gc, err := config.LoadTetris(configPath)
	if err != nil {
		gc = config.DefaultTetrisConfig()
	}
	g.reset(cfg, gc)
}

func (g *Game) reset(rc core.RuntimeConfig, gc config.TetrisConfig) {
	g.cfg = gc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.board = engine.NewBoard(gc.Playfield.Rows(), gc.Playfield.Columns(), g.rng)

	g.bot = newPlayer(gc.Search)

	g.auto = g.startAuto
	g.everAuto = g.startAuto
	g.tick = 0
	g.tickRate = rc.TickRate
	g.tickMS = rc.TickMillis()
	g.elapsedMS = 0
	g.pieces = 0
	g.hasLastMove = false
	g.gameOver = false
	g.paused = false
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// newPlayer builds the autonomous player from validated search settings,
// which always carry four weights.
func newPlayer(sc config.SearchConfig) *bot.Engine {
	var w bot.Weights
	copy(w[:], sc.Weights)
	return &bot.Engine{Weights: w, Lookahead: sc.Lookahead}
}

// Resize adapts the layout to a new terminal size without losing the game.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	needW, needH := g.layoutSize()
	g.tooSmall = w < needW || h < needH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var res core.StepResult

	if in.Has(core.ActionRestart) && g.gameOver {
		g.reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		}, g.cfg)
		res.State = g.State()
		return res
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused || g.tooSmall {
		res.State = g.State()
		return res
	}

	if in.Has(core.ActionToggleAuto) {
		g.auto = !g.auto
		if g.auto {
			g.everAuto = true
		}
	}

	if !g.auto {
		g.handleInput(in, &res)
	}

	g.elapsedMS += g.tickMS
	for !g.gameOver {
		interval := float64(g.cfg.Speed.FallInterval(g.board.Level()))
		if g.elapsedMS < interval {
			break
		}
		g.elapsedMS -= interval
		g.fall(&res)
	}

	res.State = g.State()
	return res
}

// handleInput applies manual moves to the current piece.
func (g *Game) handleInput(in core.InputFrame, res *core.StepResult) {
	if in.Has(core.ActionLeft) {
		g.board.Move(-1)
	}
	if in.Has(core.ActionRight) {
		g.board.Move(1)
	}
	if in.Has(core.ActionRotateCW) {
		g.board.RotateClockwise()
	}
	if in.Has(core.ActionRotateCCW) {
		g.board.RotateCounterClockwise()
	}
	if in.Has(core.ActionSoftDrop) {
		g.board.SoftDrop()
	}
	if in.Has(core.ActionHardDrop) {
		lines, err := g.board.HardDrop()
		g.locked(res, lines, err)
		g.elapsedMS = 0
	}
}

// fall runs one gravity step: in manual mode the piece drops a row, in
// autonomous mode the player places a whole piece.
func (g *Game) fall(res *core.StepResult) {
	if g.auto {
		m, lines, err := g.bot.Play(g.board)
		if !errors.Is(err, bot.ErrNoMove) {
			g.lastMove, g.hasLastMove = m, true
		}
		g.locked(res, lines, err)
		return
	}

	locked, lines, err := g.board.Tick()
	if locked {
		g.locked(res, lines, err)
	}
}

// locked records a lock and ends the game on lockout or exhaustion. Any
// other error is a broken engine invariant and panics.
func (g *Game) locked(res *core.StepResult, lines int, err error) {
	switch {
	case err == nil:
	case errors.Is(err, bot.ErrNoMove):
		g.gameOver = true
		return
	case errors.Is(err, engine.ErrLockout):
		g.gameOver = true
	default:
		panic(fmt.Errorf("tetris: %w", err))
	}
	g.pieces++
	res.Locked = true
	res.Cleared += lines
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		Level:    g.board.Level(),
		Lines:    g.board.Lines(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Autonomous reports whether the autonomous player is in control.
func (g *Game) Autonomous() bool { return g.auto }

// UsedAutonomous reports whether the autonomous player placed pieces at
// any point of this run.
func (g *Game) UsedAutonomous() bool { return g.everAuto }

// Pieces returns the number of pieces locked so far.
func (g *Game) Pieces() int { return g.pieces }
