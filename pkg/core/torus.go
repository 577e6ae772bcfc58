package core

// Torus describes a W*H grid whose edges wrap on both axes.
type Torus struct {
	W, H int

	// offsets holds the eight neighbour deltas expressed as non-negative
	// additions so that (x+dx)%W never sees a negative operand.
	offsets [8][2]int
}

// NewTorus builds the addressing helper for a w*h grid. Dimensions must be
// positive; callers validate them first.
func NewTorus(w, h int) Torus {
	return Torus{
		W: w,
		H: h,
		offsets: [8][2]int{
			{w - 1, h - 1},
			{w - 1, 0},
			{w - 1, 1},
			{0, h - 1},
			{0, 1},
			{1, h - 1},
			{1, 0},
			{1, 1},
		},
	}
}

// Index returns the linear slice index for coordinates (x, y).
func (t Torus) Index(x, y int) int { return y*t.W + x }

// Wrap applies toroidal wrapping to arbitrary coordinates.
func (t Torus) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}

// Contains reports whether (x, y) lies inside the grid without wrapping.
func (t Torus) Contains(x, y int) bool {
	return x >= 0 && x < t.W && y >= 0 && y < t.H
}

// Neighbors returns the linear indices of the eight toroidal neighbours of
// (x, y), which must already be in range.
func (t Torus) Neighbors(x, y int) [8]int {
	var out [8]int
	for i, d := range t.offsets {
		nx := (x + d[0]) % t.W
		ny := (y + d[1]) % t.H
		out[i] = ny*t.W + nx
	}
	return out
}

// CountAlive returns the number of non-zero cells among the eight neighbours
// of (x, y) in cells.
func (t Torus) CountAlive(cells []uint8, x, y int) int {
	n := 0
	for _, idx := range t.Neighbors(x, y) {
		if cells[idx] != 0 {
			n++
		}
	}
	return n
}
