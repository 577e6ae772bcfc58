package life

import (
	"errors"
	"io"

	"counterlife/pkg/core"
)

var errNoSource = errors.New("no entropy source configured")

// seed fills the grid from src, one bit per cell, primes the neighbour
// counts and paints the whole framebuffer.
func (u *Universe) seed(src io.Reader) {
	buf := make([]byte, core.SeedLen(len(u.cells)))
	u.seedErr = nil
	err := errNoSource
	if src != nil {
		_, err = io.ReadFull(src, buf)
	}
	if err != nil {
		u.seedErr = &core.EntropyError{Want: len(buf), Err: err}
		u.log.Warn("seeding with all cells dead", "err", u.seedErr)
		clear(buf)
	}

	clear(u.prev)
	u.count.reset()
	u.population = core.UnpackBits(buf, u.cells)
	w := u.torus.W
	for i, c := range u.cells {
		if c != 0 {
			u.count.increment(i%w, i/w)
		}
	}
	u.generation = 0
	u.raster.paint(u.cells, true)
}
