// Package bot is the autonomous player: it scores every final resting
// position of the current piece with a weighted cost over grid features and
// a one-piece lookahead, and picks the cheapest.
package bot

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// Holes counts empty cells that have an occupied cell somewhere above them
// in the same column.
func Holes(g engine.Grid) int {
	holes := 0
	for x := 0; x < g.Columns(); x++ {
		covered := false
		for y := 0; y < g.Rows(); y++ {
			if g.At(x, y) != engine.Empty {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}

// Heights returns the height of every column: rows minus the index of the
// topmost occupied cell, or 0 for an empty column.
func Heights(g engine.Grid) []int {
	heights := make([]int, g.Columns())
	for x := range heights {
		for y := 0; y < g.Rows(); y++ {
			if g.At(x, y) != engine.Empty {
				heights[x] = g.Rows() - y
				break
			}
		}
	}
	return heights
}

// Bumpiness sums the absolute height differences of adjacent columns.
func Bumpiness(g engine.Grid) int {
	heights := Heights(g)
	sum := 0
	for i := 0; i+1 < len(heights); i++ {
		d := heights[i] - heights[i+1]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// DropHeight returns the row p would rest on after a full drop from its
// current position. p is passed by value and is not modified.
func DropHeight(g engine.Grid, p engine.Piece) int {
	return g.RestingY(p)
}

// Heuristics is the diagnostic readout shown next to the playfield.
type Heuristics struct {
	Holes      int
	DropHeight int
	Bumpiness  int
}

// Inspect computes the heuristics for the board's current grid and piece.
func Inspect(b *engine.Board) Heuristics {
	g := b.Grid()
	return Heuristics{
		Holes:      Holes(g),
		DropHeight: DropHeight(g, b.Current()),
		Bumpiness:  Bumpiness(g),
	}
}
