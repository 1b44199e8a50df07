package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 10x22 grid,
// the tuned search weights and the classic speed table.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Playfield: PlayfieldConfig{
			Width:    300,
			Height:   660,
			CellSize: 30,
		},
		Search: SearchConfig{
			Weights:   []float64{3.0, 0.5, 0.3, 8.5},
			Lookahead: true,
		},
		Speed: SpeedConfig{
			Levels: []SpeedStep{
				{From: 1, IntervalMS: 100},
				{From: 10, IntervalMS: 80},
				{From: 13, IntervalMS: 50},
				{From: 16, IntervalMS: 30},
				{From: 19, IntervalMS: 10},
				{From: 29, IntervalMS: 5},
			},
		},
	}
}
