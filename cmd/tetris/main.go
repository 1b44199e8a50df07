// tetris plays Tetris in the terminal, by hand or with the built-in
// placement-search player.
//
// Usage:
//
//	tetris list                 - List the game modes
//	tetris play [mode]          - Play a mode (default: tetris)
//	tetris menu                 - Pick modes interactively
//	tetris scores <mode>        - Show the best stored runs
//	tetris serve                - Start the SSH server
//	tetris autoplay             - Run headless games with the autonomous player
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.tetris/runs.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris" // registers the modes
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "tetris",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal, with an autonomous player",
	Long: `Tetris for the terminal. Play by hand, hand the board to the
built-in player at any time with A, or watch it play on its own.

Available commands:
  list      - Show the game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  scores    - View the best runs
  serve     - Start the SSH server for remote play
  autoplay  - Run headless games and store the results

Examples:
  tetris play
  tetris play tetris_auto --seed 42
  tetris menu
  tetris serve --addr :2222
  tetris autoplay --runs 10 --max-pieces 500`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", tui.DefaultDBPath, "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(autoplayCmd)
}

// runtimeConfig sizes the screen from the attached terminal, falling back
// to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
