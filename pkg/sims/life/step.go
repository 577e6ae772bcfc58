package life

// Step advances the universe by one generation. Buffers are swapped, never
// reallocated.
func (u *Universe) Step() {
	u.cells, u.prev = u.prev, u.cells
	u.count.rotate()

	w, h := u.torus.W, u.torus.H
	prevCounts := u.count.prev
	population := 0
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			idx := row + x
			next := nextState(u.prev[idx], prevCounts[idx])
			u.cells[idx] = next
			if next == 1 {
				u.count.increment(x, y)
				population++
			}
		}
	}
	u.population = population
	u.generation++
}

// Steps runs n generations.
func (u *Universe) Steps(n int) {
	for i := 0; i < n; i++ {
		u.Step()
	}
}

// nextState applies B3/S23 to a cell given its live neighbour count.
func nextState(cell, neighbors uint8) uint8 {
	switch {
	case cell == 1 && (neighbors == 2 || neighbors == 3):
		return 1
	case cell == 0 && neighbors == 3:
		return 1
	default:
		return 0
	}
}
