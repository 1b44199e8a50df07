package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// stubGame ends after a fixed number of steps.
type stubGame struct {
	steps   int
	endAt   int
	resets  int
	resized bool
	lastIn  core.InputFrame
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.resets++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			g.lastIn.Set(a)
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Score:    g.steps * 100,
		Level:    1,
		Lines:    g.steps,
		GameOver: g.steps >= g.endAt,
	}
}

func (g *stubGame) Resize(int, int) { g.resized = true }

func (g *stubGame) UsedAutonomous() bool { return true }
func (g *stubGame) Pieces() int          { return g.steps * 2 }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	next, _ := m.Update(TickMsg{ID: m.tickID, Time: time.Now()})
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{endAt: 3}
	m := NewGameModel(game, store, core.DefaultConfig())
	m.Init()

	for i := 0; i < 6; i++ {
		m = tick(t, m)
	}

	runs, err := store.TopRuns("stub", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 300, runs[0].Score)
	assert.Equal(t, 3, runs[0].Lines)
	assert.Equal(t, 6, runs[0].Pieces)
	assert.True(t, runs[0].Auto)
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewGameModel(game, nil, core.DefaultConfig())
	m.Init()

	next, _ := m.Update(TickMsg{ID: m.tickID + 1000, Time: time.Now()})
	m = next.(GameModel)
	assert.Equal(t, 0, game.steps)

	m = tick(t, m)
	assert.Equal(t, 1, game.steps)
}

func TestGameModelForwardsInput(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewGameModel(game, nil, core.DefaultConfig())
	m.Init()

	next, _ := m.Update(runeKey('h'))
	m = next.(GameModel)
	m = tick(t, m)
	assert.True(t, game.lastIn.Has(core.ActionLeft))

	// The frame is cleared after each tick.
	tick(t, m)
	assert.False(t, game.lastIn.Has(core.ActionLeft))
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewGameModel(game, nil, core.DefaultConfig())
	m.Init()
	require.Equal(t, 1, game.resets)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(GameModel)
	assert.True(t, game.resized)
	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 120, m.config.ScreenW)
}

func TestGameModelBackAfterGameOver(t *testing.T) {
	game := &stubGame{endAt: 1}
	m := NewGameModel(game, nil, core.DefaultConfig())
	m.Init()
	m = tick(t, m)
	require.True(t, m.State().GameOver)

	next, _ := m.Update(runeKey('b'))
	m = next.(GameModel)
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&stubGame{endAt: 100}, nil, core.DefaultConfig())
	next, cmd := m.Update(runeKey('q'))
	assert.True(t, next.(GameModel).IsQuitting())
	assert.NotNil(t, cmd)
}
