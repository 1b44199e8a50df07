package engine

import "strings"

// Grid is the fixed-size cell matrix of the playfield. Row 0 is the top.
//
// Grid has explicit copy semantics: Clone returns an independent grid, and
// nothing in this package shares cell storage between two grids.
type Grid struct {
	rows, cols int
	cells      []Kind
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		panic("engine: grid dimensions must be positive")
	}
	return Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Kind, rows*cols),
	}
}

// GridFromRows builds a grid from row slices of equal length.
func GridFromRows(rows [][]Kind) Grid {
	g := NewGrid(len(rows), len(rows[0]))
	for y, row := range rows {
		if len(row) != g.cols {
			panic("engine: ragged grid rows")
		}
		copy(g.cells[y*g.cols:(y+1)*g.cols], row)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns.
func (g Grid) Columns() int {
	return g.cols
}

// InBounds reports whether (x, y) is inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the cell at column x, row y. Out-of-bounds reads return Empty.
func (g Grid) At(x, y int) Kind {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.cols+x]
}

// Set writes a cell. Out-of-bounds writes are ignored; callers that must
// not lose a write validate with InBounds first.
func (g Grid) Set(x, y int, k Kind) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.cols+x] = k
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := Grid{rows: g.rows, cols: g.cols, cells: make([]Kind, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have the same dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Fits reports whether p shifted by (dx, dy) lies inside the grid and
// overlaps no occupied cell.
func (g Grid) Fits(p Piece, dx, dy int) bool {
	n := p.Matrix.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if p.Matrix.At(x, y) == Empty {
				continue
			}
			gx := p.X + x + dx
			gy := p.Y + y + dy
			if !g.InBounds(gx, gy) {
				return false
			}
			if g.cells[gy*g.cols+gx] != Empty {
				return false
			}
		}
	}
	return true
}

// Place writes the piece's cells into the grid. If any cell would land out
// of bounds it returns a *ContractViolation and writes nothing.
func (g Grid) Place(p Piece) error {
	cells := p.Cells()
	for _, c := range cells {
		gx, gy := p.X+c.X, p.Y+c.Y
		if !g.InBounds(gx, gy) {
			return &ContractViolation{
				Kind:    p.Kind,
				X:       gx,
				Y:       gy,
				Rows:    g.rows,
				Columns: g.cols,
			}
		}
	}
	for _, c := range cells {
		g.cells[(p.Y+c.Y)*g.cols+p.X+c.X] = c.Kind
	}
	return nil
}

// RestingY returns the row p would come to rest on if dropped straight down
// from its current position. A piece that does not fit where it is rests
// where it is.
func (g Grid) RestingY(p Piece) int {
	for g.Fits(p, 0, 1) {
		p.Y++
	}
	return p.Y
}

// ClearFull removes every full row, shifts the remaining rows down keeping
// their order, and fills the top with empty rows. It returns the number of
// rows removed.
func (g Grid) ClearFull() int {
	write := g.rows - 1
	cleared := 0
	for read := g.rows - 1; read >= 0; read-- {
		if g.rowFull(read) {
			cleared++
			continue
		}
		if write != read {
			copy(g.cells[write*g.cols:(write+1)*g.cols], g.cells[read*g.cols:(read+1)*g.cols])
		}
		write--
	}
	for y := write; y >= 0; y-- {
		row := g.cells[y*g.cols : (y+1)*g.cols]
		for x := range row {
			row[x] = Empty
		}
	}
	return cleared
}

func (g Grid) rowFull(y int) bool {
	for _, k := range g.cells[y*g.cols : (y+1)*g.cols] {
		if k == Empty {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, using kind letters and '.'
// for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.cols; x++ {
			sb.WriteString(g.cells[y*g.cols+x].String())
		}
	}
	return sb.String()
}
