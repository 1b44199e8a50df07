package tetris

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/bot"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// 50 ticks per second gives exact 20 ms steps, so the 100 ms level-1
// interval elapses on every fifth tick.
func newTestGame(t *testing.T, auto bool, seed int64) *Game {
	t.Helper()
	g := New()
	if auto {
		g = NewAuto()
	}
	g.reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: seed}, config.DefaultTetrisConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDManual, IDAuto} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, true, 12345)
	g2 := newTestGame(t, true, 12345)

	for i := 0; i < 600; i++ {
		g1.Step(core.NewInputFrame())
		g2.Step(core.NewInputFrame())
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Positive(t, g1.Pieces())
}

func TestManualGravity(t *testing.T) {
	g := newTestGame(t, false, 1)
	y0 := g.Snapshot().CurrentY

	for i := 0; i < 4; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, y0, g.Snapshot().CurrentY, "piece fell before the interval elapsed")

	g.Step(core.NewInputFrame())
	assert.Equal(t, y0+1, g.Snapshot().CurrentY)
}

func TestManualInput(t *testing.T) {
	g := newTestGame(t, false, 1)
	x0 := g.Snapshot().CurrentX

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, x0-1, g.Snapshot().CurrentX)

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	assert.Equal(t, x0+1, g.Snapshot().CurrentX)

	y := g.Snapshot().CurrentY
	g.Step(frame(core.ActionSoftDrop))
	assert.Equal(t, y+1, g.Snapshot().CurrentY)
}

func TestHardDropLocks(t *testing.T) {
	g := newTestGame(t, false, 3)
	next := g.Snapshot().Next

	res := g.Step(frame(core.ActionHardDrop))

	assert.True(t, res.Locked)
	assert.Equal(t, 1, g.Pieces())
	assert.Equal(t, next, g.Snapshot().Current)
	assert.NotEqual(t, strings.Repeat(".", 10), lastRow(g.Snapshot().Grid))
}

func lastRow(grid string) string {
	rows := strings.Split(grid, "\n")
	return rows[len(rows)-1]
}

func TestInputIgnoredWhileAutonomous(t *testing.T) {
	g := newTestGame(t, true, 4)
	x0 := g.Snapshot().CurrentX

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, x0, g.Snapshot().CurrentX)
}

func TestToggleAuto(t *testing.T) {
	g := newTestGame(t, false, 5)
	assert.False(t, g.Autonomous())

	g.Step(frame(core.ActionToggleAuto))
	assert.True(t, g.Autonomous())
	assert.True(t, g.UsedAutonomous())

	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 10, g.Pieces(), "one placement per 100 ms at level 1")

	g.Step(frame(core.ActionToggleAuto))
	assert.False(t, g.Autonomous())
	assert.True(t, g.UsedAutonomous())
}

func TestPauseFreezes(t *testing.T) {
	g := newTestGame(t, false, 6)
	g.Step(frame(core.ActionPause))
	before := g.Snapshot()
	assert.Equal(t, StatePaused, before.State)

	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	after := g.Snapshot()
	assert.Equal(t, before.Grid, after.Grid)
	assert.Equal(t, before.CurrentY, after.CurrentY)

	g.Step(frame(core.ActionPause))
	assert.Equal(t, StatePlaying, g.Snapshot().State)
}

func TestLockoutEndsGameAndRestart(t *testing.T) {
	g := newTestGame(t, false, 7)

	// Every piece lands in the spawn columns, so the stack reaches the top.
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	require.True(t, g.State().GameOver)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	frozen := g.Snapshot()
	g.Step(frame(core.ActionHardDrop))
	assert.Equal(t, frozen.Grid, g.Snapshot().Grid)

	g.Step(frame(core.ActionRestart))
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 0, g.Pieces())
	assert.Equal(t, 0, g.State().Score)
	assert.Equal(t, 1, g.State().Level)
}

func TestContractViolationPanics(t *testing.T) {
	g := newTestGame(t, false, 8)
	var res core.StepResult
	assert.Panics(t, func() {
		g.locked(&res, 0, &engine.ContractViolation{Kind: engine.I, X: -1, Y: 0, Rows: 22, Columns: 10})
	})
}

func TestLockedGameOverOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		lines      int
		err        error
		wantPieces int
		wantLocked bool
	}{
		{"placed", 1, nil, 1, true},
		{"lockout counts the locked piece", 2, engine.ErrLockout, 1, true},
		{"no placement locks nothing", 0, bot.ErrNoMove, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, true, 10)
			var res core.StepResult
			g.locked(&res, tc.lines, tc.err)

			assert.Equal(t, tc.err != nil, g.State().GameOver)
			assert.Equal(t, tc.wantPieces, g.Pieces())
			assert.Equal(t, tc.wantLocked, res.Locked)
			assert.Equal(t, tc.lines, res.Cleared)
		})
	}
}

func TestNewPlayerUsesConfiguredWeights(t *testing.T) {
	p := newPlayer(config.SearchConfig{Weights: []float64{1, 2, 3, 4}, Lookahead: false})
	assert.Equal(t, bot.Weights{1, 2, 3, 4}, p.Weights)
	assert.False(t, p.Lookahead)

	p = newPlayer(config.DefaultTetrisConfig().Search)
	assert.Equal(t, bot.DefaultWeights, p.Weights)
	assert.True(t, p.Lookahead)
}

func TestResizeKeepsGame(t *testing.T) {
	g := newTestGame(t, false, 9)
	g.Step(frame(core.ActionHardDrop))
	grid := g.Snapshot().Grid

	g.Resize(20, 10)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	g.Resize(80, 24)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
	assert.Equal(t, grid, g.Snapshot().Grid)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, false, 10)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Score", "Level", "Lines", "Next", "Manual", "Holes", "Bumpiness"} {
		assert.Contains(t, out, want)
	}

	g.Resize(30, 10)
	small := core.NewScreen(30, 10)
	g.Render(small)
	assert.Contains(t, small.String(), "Window too small")
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, false, 11)
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	require.True(t, g.State().GameOver)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Game Over")
}

func TestAutoplay(t *testing.T) {
	cfg := config.DefaultTetrisConfig()

	r1, err := Autoplay(context.Background(), cfg, 21, 80)
	require.NoError(t, err)
	r2, err := Autoplay(context.Background(), cfg, 21, 80)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.LessOrEqual(t, r1.Pieces, 80)
	assert.Equal(t, int64(21), r1.Seed)
	if r1.Capped {
		assert.Equal(t, 80, r1.Pieces)
	}
}

func TestAutoplayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Autoplay(ctx, config.DefaultTetrisConfig(), 1, 0)
	assert.True(t, errors.Is(err, context.Canceled))
}
