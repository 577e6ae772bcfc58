package life

import (
	"io"

	"counterlife/pkg/core"
)

// Reference is the full-recompute Life: every generation counts all eight
// neighbours of every cell from scratch. It is slow and obviously correct,
// and serves as the yardstick for Universe.
type Reference struct {
	torus      core.Torus
	cur        []uint8
	nxt        []uint8
	generation uint64
}

// NewReference returns an all-dead reference grid.
func NewReference(w, h int) (*Reference, error) {
	if err := core.CheckDims(w, h, 1); err != nil {
		return nil, err
	}
	cells := make([]uint8, w*h)
	return &Reference{torus: core.NewTorus(w, h), cur: cells, nxt: make([]uint8, len(cells))}, nil
}

// Name returns the simulation identifier.
func (r *Reference) Name() string { return "life-naive" }

// Size returns the grid dimensions.
func (r *Reference) Size() core.Size { return core.Size{W: r.torus.W, H: r.torus.H} }

// Cells exposes the current grid values.
func (r *Reference) Cells() []uint8 { return r.cur }

// Generation returns the number of steps since the last reset.
func (r *Reference) Generation() uint64 { return r.generation }

// Load replaces the grid with a copy of cells, which must have W*H entries.
func (r *Reference) Load(cells []uint8) {
	for i, c := range cells[:len(r.cur)] {
		r.cur[i] = c & 1
	}
	r.generation = 0
}

// Reset seeds the grid exactly like Universe.Reset does for the same seed.
func (r *Reference) Reset(seed int64) {
	buf := make([]byte, core.SeedLen(len(r.cur)))
	if _, err := io.ReadFull(core.NewRNG(seed), buf); err != nil {
		clear(buf)
	}
	core.UnpackBits(buf, r.cur)
	r.generation = 0
}

// Step advances the simulation by one generation.
func (r *Reference) Step() {
	w, h := r.torus.W, r.torus.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := r.torus.Wrap(x+dx, y+dy)
					neighbors += int(r.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := r.cur[idx] == 1
			r.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				r.nxt[idx] = 1
			}
		}
	}
	r.cur, r.nxt = r.nxt, r.cur
	r.generation++
}
