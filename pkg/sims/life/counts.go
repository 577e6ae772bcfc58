package life

import "counterlife/pkg/core"

// neighborCounts tracks, for every cell, how many of its eight toroidal
// neighbours are alive. cur always agrees with Universe.cells between calls;
// prev holds the previous generation's counts during and after a Step.
type neighborCounts struct {
	torus core.Torus
	cur   []uint8
	prev  []uint8
}

func newNeighborCounts(t core.Torus) neighborCounts {
	n := t.W * t.H
	return neighborCounts{torus: t, cur: make([]uint8, n), prev: make([]uint8, n)}
}

// increment must run exactly once for every dead-to-alive transition.
func (n *neighborCounts) increment(x, y int) {
	for _, idx := range n.torus.Neighbors(x, y) {
		n.cur[idx]++
	}
}

// decrement must run exactly once for every alive-to-dead transition.
func (n *neighborCounts) decrement(x, y int) {
	for _, idx := range n.torus.Neighbors(x, y) {
		n.cur[idx]--
	}
}

// rotate makes the current counts the previous ones and clears the new
// current buffer so it can be rebuilt.
func (n *neighborCounts) rotate() {
	n.cur, n.prev = n.prev, n.cur
	clear(n.cur)
}

func (n *neighborCounts) reset() {
	clear(n.cur)
	clear(n.prev)
}
