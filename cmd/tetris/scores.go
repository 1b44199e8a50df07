package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the best runs of a mode",
	Long: `Display the best stored runs for the given mode.

Examples:
  tetris scores tetris
  tetris scores tetris_auto --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tetris list' to see the modes", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-9s  %-5s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Lines", "Pieces", "Player", "Date")
	fmt.Printf("  %-4s  %-9s  %-5s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "------", "------", "----")
	for i, r := range runs {
		player := "human"
		if r.Auto {
			player = "auto"
		}
		fmt.Printf("  %-4d  %-9d  %-5d  %-6d  %-6d  %-6s  %s\n",
			i+1, r.Score, r.Level, r.Lines, r.Pieces, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
