// Package core holds the platform-neutral types shared by the game and the
// terminal front end: the colored screen buffer, semantic input actions and
// the runtime configuration. It does not import Bubble Tea so game logic
// stays testable without a terminal.
package core

// Rect is an axis-aligned area of the screen in character cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with top-left corner (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
