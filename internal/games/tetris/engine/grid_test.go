package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearFull(t *testing.T) {
	tests := []struct {
		name    string
		in      [][]Kind
		want    [][]Kind
		cleared int
	}{
		{
			name: "single full row on top",
			in: [][]Kind{
				{T, T, T, T},
				{0, S, 0, 0},
			},
			want: [][]Kind{
				{0, 0, 0, 0},
				{0, S, 0, 0},
			},
			cleared: 1,
		},
		{
			name: "non adjacent full rows keep order of the rest",
			in: [][]Kind{
				{0, 0, J, 0},
				{I, I, I, I},
				{L, 0, 0, 0},
				{O, O, O, O},
			},
			want: [][]Kind{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, J, 0},
				{L, 0, 0, 0},
			},
			cleared: 2,
		},
		{
			name: "four rows",
			in: [][]Kind{
				{I, T, T, T},
				{I, S, S, Z},
				{I, Z, Z, O},
				{I, L, L, L},
			},
			want: [][]Kind{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			cleared: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := GridFromRows(tc.in)
			n := g.ClearFull()
			assert.Equal(t, tc.cleared, n)
			if diff := cmp.Diff(GridFromRows(tc.want).String(), g.String()); diff != "" {
				t.Errorf("ClearFull() grid mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClearFullNoFullRowsIsIdentity(t *testing.T) {
	g := GridFromRows([][]Kind{
		{0, 0, 0, 0},
		{T, 0, T, 0},
		{S, S, 0, Z},
	})
	before := g.Clone()

	assert.Equal(t, 0, g.ClearFull())
	assert.True(t, before.Equal(g), "grid changed:\n%s", g)
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.Clone()
	c.Set(1, 1, O)

	assert.Equal(t, Empty, g.At(1, 1))
	assert.Equal(t, O, c.At(1, 1))
	assert.False(t, g.Equal(c))
}

func TestFitsBounds(t *testing.T) {
	g := NewGrid(4, 4)
	p := Piece{Kind: O, Matrix: Shape(O), X: 0, Y: 0}

	assert.True(t, g.Fits(p, 0, 0))
	assert.False(t, g.Fits(p, -1, 0), "left wall")
	assert.True(t, g.Fits(p, 2, 2))
	assert.False(t, g.Fits(p, 3, 0), "right wall")
	assert.False(t, g.Fits(p, 0, 3), "floor")

	g.Set(1, 1, T)
	assert.False(t, g.Fits(p, 0, 0), "occupied cell")
}

func TestFitsIgnoresEmptyMatrixCells(t *testing.T) {
	g := NewGrid(4, 4)
	// The spawn I piece has an empty top row, so y = -1 keeps it inside.
	p := Piece{Kind: I, Matrix: Shape(I), X: 0, Y: -1}
	assert.True(t, g.Fits(p, 0, 0))
}

func TestPlaceOutOfBoundsWritesNothing(t *testing.T) {
	g := NewGrid(4, 4)
	before := g.Clone()
	p := Piece{Kind: T, Matrix: Shape(T), X: 2, Y: 0}

	err := g.Place(p)
	require.Error(t, err)
	assert.True(t, IsContractViolation(err))
	assert.True(t, before.Equal(g))
}

func TestRestingY(t *testing.T) {
	g := GridFromRows([][]Kind{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{T, 0, 0, 0},
	})
	p := Piece{Kind: O, Matrix: Shape(O), X: 0, Y: 0}
	assert.Equal(t, 2, g.RestingY(p))

	p.X = 1
	assert.Equal(t, 3, g.RestingY(p))
}
