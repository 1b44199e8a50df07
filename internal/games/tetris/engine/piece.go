package engine

// Piece is the active tetromino: a matrix in its current rotation state and
// the cell-space position of the matrix's top-left corner.
type Piece struct {
	Kind   Kind
	Matrix Matrix
	X, Y   int
}

// Spawn creates a piece of kind k centered horizontally at the top of a
// board with the given column count.
func Spawn(k Kind, columns int) Piece {
	return Piece{
		Kind:   k,
		Matrix: Shape(k),
		X:      columns / 2,
		Y:      0,
	}
}

// Rotate turns the piece clockwise in place. Validity against a board is
// the board's concern.
func (p *Piece) Rotate() {
	p.Matrix = p.Matrix.Rotated()
}

// RotateCounterClockwise turns the piece counter-clockwise in place.
func (p *Piece) RotateCounterClockwise() {
	p.Matrix = p.Matrix.RotatedCounterClockwise()
}

// Cell is a nonzero matrix cell relative to the piece origin.
type Cell struct {
	X, Y int
	Kind Kind
}

// Cells returns the nonzero cells of the matrix relative to the origin,
// in row-major order.
func (p Piece) Cells() []Cell {
	n := p.Matrix.Size()
	cells := make([]Cell, 0, 4)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if k := p.Matrix.At(x, y); k != Empty {
				cells = append(cells, Cell{X: x, Y: y, Kind: k})
			}
		}
	}
	return cells
}
