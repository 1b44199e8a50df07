package main

import (
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagRuns      int
	flagMaxPieces int
	flagNoStore   bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Run headless games with the autonomous player",
	Long: `Play games back to back with the autonomous player, without a
terminal or gravity timing, and log each result. Finished runs are stored
under the tetris_auto mode unless --no-store is given.

Run i uses seed --seed + i, so a fixed --seed reproduces a batch.

Examples:
  tetris autoplay
  tetris autoplay --runs 20 --max-pieces 1000 --seed 1
  tetris autoplay --config ./weights.yaml --no-store`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of games to play")
	autoplayCmd.Flags().IntVar(&flagMaxPieces, "max-pieces", 0, "Stop each game after this many pieces (0 = until game over)")
	autoplayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	autoplayCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not store the runs")
}

func runAutoplay(cmd *cobra.Command, _ []string) error {
	gc, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var store *storage.Store
	if !flagNoStore {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	for i := 0; i < flagRuns; i++ {
		start := time.Now()
		res, err := tetris.Autoplay(ctx, gc, base+int64(i), flagMaxPieces)
		if err != nil {
			if ctx.Err() != nil {
				logger.Warn("interrupted", "run", i+1, "pieces", res.Pieces)
				return nil
			}
			return err
		}

		logger.Info("run finished",
			"run", i+1,
			"seed", res.Seed,
			"score", res.Score,
			"level", res.Level,
			"lines", res.Lines,
			"pieces", res.Pieces,
			"capped", res.Capped,
			"took", time.Since(start).Round(time.Millisecond),
		)

		if store != nil {
			if _, err := store.SaveRun(storage.Run{
				GameID: tetris.IDAuto,
				Auto:   true,
				Score:  res.Score,
				Level:  res.Level,
				Lines:  res.Lines,
				Pieces: res.Pieces,
			}); err != nil {
				logger.Warn("could not store run", "error", err)
			}
		}
	}
	return nil
}
