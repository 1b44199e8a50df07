// Package engine implements the falling-block grid simulation: the shape
// catalog, pieces and rotation, the 7-bag supply, the cell grid, and the
// board state machine with locking, line clearing and scoring.
//
// The package has no dependencies on the platform layer beyond core.Color
// and keeps no mutable package state.
package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies a shape. The zero value is an empty cell.
type Kind uint8

const (
	Empty Kind = iota
	T
	S
	Z
	J
	L
	I
	O
)

// KindCount is the number of non-empty kinds.
const KindCount = 7

// Kinds lists the non-empty kinds in catalog order.
var Kinds = [KindCount]Kind{T, S, Z, J, L, I, O}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "."
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	case I:
		return "I"
	case O:
		return "O"
	default:
		return "?"
	}
}

// Valid reports whether k is one of the eight legal cell values.
func (k Kind) Valid() bool {
	return k <= O
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	switch k {
	case T:
		return core.ColorMagenta
	case S:
		return core.ColorRed
	case Z:
		return core.ColorGreen
	case J:
		return core.ColorBrightMagenta
	case L:
		return core.ColorOrange
	case I:
		return core.ColorCyan
	case O:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// maxSize is the largest matrix side in the catalog (the I piece).
const maxSize = 4

// Matrix is a square shape matrix of side Size(). It is a value type:
// assignment copies it and == compares it cell for cell.
type Matrix struct {
	n     int
	cells [maxSize][maxSize]Kind
}

// NewMatrix builds a matrix from rows. Rows must be square and at most 4x4.
func NewMatrix(rows [][]Kind) Matrix {
	n := len(rows)
	if n == 0 || n > maxSize {
		panic("engine: matrix side must be 1..4")
	}
	var m Matrix
	m.n = n
	for y, row := range rows {
		if len(row) != n {
			panic("engine: matrix must be square")
		}
		copy(m.cells[y][:n], row)
	}
	return m
}

// Size returns the side length of the matrix.
func (m Matrix) Size() int {
	return m.n
}

// At returns the cell at column x, row y.
func (m Matrix) At(x, y int) Kind {
	return m.cells[y][x]
}

// Rotated returns the matrix turned 90 degrees clockwise:
// new[i][j] = old[n-1-j][i].
func (m Matrix) Rotated() Matrix {
	r := Matrix{n: m.n}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			r.cells[i][j] = m.cells[m.n-1-j][i]
		}
	}
	return r
}

// RotatedCounterClockwise returns the matrix turned 90 degrees
// counter-clockwise: new[i][j] = old[j][n-1-i].
func (m Matrix) RotatedCounterClockwise() Matrix {
	r := Matrix{n: m.n}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			r.cells[i][j] = m.cells[j][m.n-1-i]
		}
	}
	return r
}

// catalog holds the spawn orientation of every kind, indexed by Kind-1.
var catalog = [KindCount]Matrix{
	NewMatrix([][]Kind{
		{0, T, 0},
		{T, T, T},
		{0, 0, 0},
	}),
	NewMatrix([][]Kind{
		{0, S, S},
		{S, S, 0},
		{0, 0, 0},
	}),
	NewMatrix([][]Kind{
		{Z, Z, 0},
		{0, Z, Z},
		{0, 0, 0},
	}),
	NewMatrix([][]Kind{
		{J, 0, 0},
		{J, J, J},
		{0, 0, 0},
	}),
	NewMatrix([][]Kind{
		{0, 0, L},
		{L, L, L},
		{0, 0, 0},
	}),
	NewMatrix([][]Kind{
		{0, 0, 0, 0},
		{I, I, I, I},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}),
	NewMatrix([][]Kind{
		{O, O},
		{O, O},
	}),
}

// Shape returns the spawn orientation of kind k. The catalog itself is
// never handed out; callers get a copy.
func Shape(k Kind) Matrix {
	if k == Empty || !k.Valid() {
		panic("engine: no shape for kind " + k.String())
	}
	return catalog[k-1]
}
