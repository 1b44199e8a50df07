package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start a game in the given mode, tetris (default) or tetris_auto.

Controls:
  Left/Right, H/L   - Move
  Down, J           - Soft drop
  Up, X, K / Z      - Rotate clockwise / counter-clockwise
  Space             - Hard drop
  A                 - Toggle the autonomous player
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Examples:
  tetris play
  tetris play tetris_auto
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
}

// useConfig validates the config at flagConfig and hands it to the game
// package.
func useConfig() error {
	if _, err := config.LoadTetris(flagConfig); err != nil {
		return err
	}
	tetris.SetConfigPath(flagConfig)
	return nil
}

// openStore opens the runs database, logging and continuing without it on
// failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tetris.IDManual
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tetris list' to see the modes", gameID)
	}
	if err := useConfig(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	state, err := tui.Run(game, store, runtimeConfig())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	fmt.Printf("Score: %d  Level: %d  Lines: %d\n", state.Score, state.Level, state.Lines)
	return nil
}
