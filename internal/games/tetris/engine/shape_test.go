package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationHasOrderFour(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			m := Shape(k)
			r := m
			for i := 0; i < 4; i++ {
				r = r.Rotated()
			}
			assert.Equal(t, m, r, "four clockwise turns must return the original")
			assert.Equal(t, m, m.Rotated().RotatedCounterClockwise())
			assert.Equal(t, m, m.RotatedCounterClockwise().Rotated())
		})
	}
}

func TestRotateClockwiseT(t *testing.T) {
	got := Shape(T).Rotated()
	want := NewMatrix([][]Kind{
		{0, T, 0},
		{0, T, T},
		{0, T, 0},
	})
	assert.Equal(t, want, got)
}

func TestRotateCounterClockwiseI(t *testing.T) {
	got := Shape(I).RotatedCounterClockwise()
	want := NewMatrix([][]Kind{
		{0, I, 0, 0},
		{0, I, 0, 0},
		{0, I, 0, 0},
		{0, I, 0, 0},
	})
	assert.Equal(t, want, got)
}

func TestRotationDoesNotTouchCatalog(t *testing.T) {
	before := Shape(L)
	p := Spawn(L, 10)
	p.Rotate()
	p.Rotate()
	assert.Equal(t, before, Shape(L))
	assert.NotEqual(t, before, p.Matrix)
}

func TestCatalogShapes(t *testing.T) {
	sizes := map[Kind]int{T: 3, S: 3, Z: 3, J: 3, L: 3, I: 4, O: 2}
	for k, size := range sizes {
		m := Shape(k)
		require.Equal(t, size, m.Size(), "kind %s", k)

		cells := 0
		for y := 0; y < m.Size(); y++ {
			for x := 0; x < m.Size(); x++ {
				if v := m.At(x, y); v != Empty {
					assert.Equal(t, k, v, "kind %s cell (%d,%d)", k, x, y)
					cells++
				}
			}
		}
		assert.Equal(t, 4, cells, "kind %s must have four cells", k)
	}
}

func TestSpawnPosition(t *testing.T) {
	p := Spawn(O, 10)
	assert.Equal(t, 5, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Len(t, p.Cells(), 4)
}

func TestBagFairness(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(42)))

	for round := 0; round < 20; round++ {
		seen := make(map[Kind]int)
		for i := 0; i < KindCount; i++ {
			seen[bag.Draw()]++
		}
		require.Len(t, seen, KindCount, "round %d", round)
		for _, k := range Kinds {
			assert.Equal(t, 1, seen[k], "round %d kind %s", round, k)
		}
		assert.Equal(t, 0, bag.Remaining())
	}
}

func TestBagDeterministicPerSeed(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(7)))
	b := NewBag(rand.New(rand.NewSource(7)))
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Draw(), b.Draw(), "draw %d", i)
	}
}
