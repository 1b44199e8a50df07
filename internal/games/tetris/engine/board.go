package engine

import "math/rand"

// Dimensions converts a playfield size and cell size, all in pixels, into
// grid rows and columns.
func Dimensions(width, height, cellSize int) (rows, columns int) {
	return height / cellSize, width / cellSize
}

// Board owns the grid, the piece supply, and the score, level and line
// counters. It holds the current and next pieces by value.
type Board struct {
	grid    Grid
	bag     *Bag
	current Piece
	next    Piece
	score   int
	level   int
	lines   int
}

// NewBoard creates an empty board and draws the next and current pieces,
// in that order, from a fresh bag driven by rng.
func NewBoard(rows, columns int, rng *rand.Rand) *Board {
	b := &Board{
		grid:  NewGrid(rows, columns),
		bag:   NewBag(rng),
		level: 1,
	}
	b.next = b.NextPiece()
	b.current = b.NextPiece()
	return b
}

// Rows returns the grid height.
func (b *Board) Rows() int { return b.grid.rows }

// Columns returns the grid width.
func (b *Board) Columns() int { return b.grid.cols }

// Grid returns a snapshot of the grid. Mutating it does not affect b.
func (b *Board) Grid() Grid { return b.grid.Clone() }

// Current returns a copy of the falling piece.
func (b *Board) Current() Piece { return b.current }

// Next returns a copy of the preview piece.
func (b *Board) Next() Piece { return b.next }

// Score returns the accumulated score.
func (b *Board) Score() int { return b.score }

// Level returns the current level, 1..MaxLevel.
func (b *Board) Level() int { return b.level }

// Lines returns the total number of cleared lines.
func (b *Board) Lines() int { return b.lines }

// IsValidMove reports whether p shifted by (dx, dy) cells stays inside the
// grid without overlapping locked cells.
func (b *Board) IsValidMove(p Piece, dx, dy int) bool {
	return b.grid.Fits(p, dx, dy)
}

// AddPiece locks p into the grid. It returns a *ContractViolation, leaving
// the grid untouched, if any cell of p lies outside the grid.
func (b *Board) AddPiece(p Piece) error {
	return b.grid.Place(p)
}

// kickOffsets are the horizontal displacements tried, in order, when a
// rotated piece does not fit.
var kickOffsets = [4]int{-1, 1, -2, 2}

// AdjustForRotation tries to make a freshly rotated piece fit by shifting
// it sideways. On success p.X keeps the accepted shift; on failure p.X is
// restored and the caller must roll back the rotation.
func (b *Board) AdjustForRotation(p *Piece) bool {
	if b.IsValidMove(*p, 0, 0) {
		return true
	}
	for _, dx := range kickOffsets {
		originalX := p.X
		p.X += dx
		if b.IsValidMove(*p, 0, 0) {
			return true
		}
		p.X = originalX
	}
	return false
}

// RotateClockwise rotates the current piece, kicking it sideways if
// needed. It reports whether the rotation was kept.
func (b *Board) RotateClockwise() bool {
	return b.rotate((*Piece).Rotate)
}

// RotateCounterClockwise is RotateClockwise in the other direction.
func (b *Board) RotateCounterClockwise() bool {
	return b.rotate((*Piece).RotateCounterClockwise)
}

func (b *Board) rotate(turn func(*Piece)) bool {
	original := b.current.Matrix
	turn(&b.current)
	if b.AdjustForRotation(&b.current) {
		return true
	}
	b.current.Matrix = original
	return false
}

// SetCurrent replaces the falling piece, typically with a rotated and
// repositioned copy of Current. Callers validate with IsValidMove first.
func (b *Board) SetCurrent(p Piece) {
	b.current = p
}

// Move shifts the current piece dx columns if the target is free.
func (b *Board) Move(dx int) bool {
	if !b.IsValidMove(b.current, dx, 0) {
		return false
	}
	b.current.X += dx
	return true
}

// SoftDrop moves the current piece down one row if the target is free.
func (b *Board) SoftDrop() bool {
	if !b.IsValidMove(b.current, 0, 1) {
		return false
	}
	b.current.Y++
	return true
}

// DropPiece lets p fall until it rests, locks it, and clears lines. It
// returns the number of lines cleared by this lock.
func (b *Board) DropPiece(p *Piece) (int, error) {
	for b.IsValidMove(*p, 0, 1) {
		p.Y++
	}
	if err := b.AddPiece(*p); err != nil {
		return 0, err
	}
	return b.ClearLines(), nil
}

// ClearLines removes full rows, scores them once for this lock, and
// updates the line count and level. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	n := b.grid.ClearFull()
	b.score += LineScore(n, b.level)
	b.lines += n
	b.level = LevelFor(b.lines)
	return n
}

// NextPiece draws a kind from the bag and spawns it at the top center.
func (b *Board) NextPiece() Piece {
	return Spawn(b.bag.Draw(), b.grid.cols)
}

// Advance promotes the preview piece to current and draws a new preview.
// It returns ErrLockout if the new current piece has no room to spawn.
func (b *Board) Advance() error {
	b.current = b.next
	b.next = b.NextPiece()
	if !b.IsValidMove(b.current, 0, 0) {
		return ErrLockout
	}
	return nil
}

// HardDrop locks the current piece at its resting row and advances to the
// next piece. It returns the lines cleared by the lock.
func (b *Board) HardDrop() (int, error) {
	n, err := b.DropPiece(&b.current)
	if err != nil {
		return 0, err
	}
	return n, b.Advance()
}

// Tick applies one step of gravity. The current piece falls a row if it
// can; otherwise it locks and the next piece comes in.
func (b *Board) Tick() (locked bool, lines int, err error) {
	if b.SoftDrop() {
		return false, 0, nil
	}
	lines, err = b.HardDrop()
	return true, lines, err
}

// SimulatePiece reports how many lines p would clear if dropped from its
// current position. The board and p are left unchanged. A piece that does
// not fit where it is clears nothing.
func (b *Board) SimulatePiece(p Piece) int {
	return SimulateDrop(b.grid, p)
}

// SimulateDrop is SimulatePiece against an arbitrary grid, which is not
// modified.
func SimulateDrop(g Grid, p Piece) int {
	if !g.Fits(p, 0, 0) {
		return 0
	}
	trial := g.Clone()
	p.Y = trial.RestingY(p)
	if err := trial.Place(p); err != nil {
		return 0
	}
	return trial.ClearFull()
}

// State is a detached copy of a board's persistent state.
type State struct {
	Grid    Grid
	Current Piece
	Next    Piece
	Score   int
	Lines   int
}

// State returns a detached copy of the board's state.
func (b *Board) State() State {
	return State{
		Grid:    b.grid.Clone(),
		Current: b.current,
		Next:    b.next,
		Score:   b.score,
		Lines:   b.lines,
	}
}

// SetState replaces the board's state. The level is derived from Lines.
// The grid is copied; s may be reused by the caller.
func (b *Board) SetState(s State) {
	b.grid = s.Grid.Clone()
	b.current = s.Current
	b.next = s.Next
	b.score = s.Score
	b.lines = s.Lines
	b.level = LevelFor(s.Lines)
}
