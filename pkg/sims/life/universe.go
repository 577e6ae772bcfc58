// Package life implements Conway's Game of Life on a torus with
// incrementally maintained neighbour counts and a dirty-block rasterizer.
//
// A Universe is owned by a single caller. None of its methods are safe for
// concurrent use.
package life

import (
	"io"
	"log/slog"

	"counterlife/pkg/core"
	"counterlife/pkg/palette"
)

// Cell is the state of one grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Universe holds the double-buffered grid, its neighbour counts and the
// upscaled framebuffer.
type Universe struct {
	torus core.Torus

	cells []uint8
	prev  []uint8
	count neighborCounts

	generation uint64
	population int

	raster *Rasterizer

	log     *slog.Logger
	seedErr error
}

// New builds a w*h universe rendered at cellSize pixels per cell, seeds it
// from the configured entropy source and paints the first frame.
func New(w, h, cellSize int, opts ...Option) (*Universe, error) {
	if err := core.CheckDims(w, h, cellSize); err != nil {
		return nil, err
	}
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = core.Logger()
	}

	torus := core.NewTorus(w, h)
	total := w * h
	u := &Universe{
		torus: torus,
		cells: make([]uint8, total),
		prev:  make([]uint8, total),
		count: newNeighborCounts(torus),
		log:   s.logger,
	}
	colors := s.palette(w, h)
	if len(colors) != total {
		colors = palette.Mono(palette.Fallback)(w, h)
	}
	u.raster = newRasterizer(torus, cellSize, colors)
	u.log.Debug("universe allocated", "w", w, "h", h, "cell_size", cellSize, "pixels", len(u.raster.pix))

	u.seed(s.entropy)
	return u, nil
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.torus.W, H: u.torus.H} }

// Cells exposes the current generation, one byte per cell. The slice is
// replaced on every Step; do not hold on to it.
func (u *Universe) Cells() []uint8 { return u.cells }

// Generation returns the number of steps taken since the last seed.
func (u *Universe) Generation() uint64 { return u.generation }

// Population returns the number of live cells.
func (u *Universe) Population() int { return u.population }

// SeedErr reports why the most recent seed fell back to an all-dead grid,
// or nil if the entropy source delivered.
func (u *Universe) SeedErr() error { return u.seedErr }

// InBounds reports whether Get and Set accept (x, y).
func (u *Universe) InBounds(x, y int) bool { return u.torus.Contains(x, y) }

// Get returns the cell at (x, y). It panics with a *core.IndexError if the
// coordinate lies outside the grid.
func (u *Universe) Get(x, y int) Cell {
	u.mustContain(x, y)
	return Cell(u.cells[u.torus.Index(x, y)])
}

// Set stores c at (x, y) and updates the neighbour counts around it. Setting
// a cell to the state it already holds does nothing. It panics with a
// *core.IndexError if the coordinate lies outside the grid.
func (u *Universe) Set(x, y int, c Cell) {
	u.mustContain(x, y)
	idx := u.torus.Index(x, y)
	v := uint8(c & 1)
	if u.cells[idx] == v {
		return
	}
	u.cells[idx] = v
	if v == 1 {
		u.count.increment(x, y)
		u.population++
		return
	}
	u.count.decrement(x, y)
	u.population--
}

// Toggle flips the cell at (x, y) and returns its new state.
func (u *Universe) Toggle(x, y int) Cell {
	next := Alive
	if u.Get(x, y) == Alive {
		next = Dead
	}
	u.Set(x, y, next)
	return next
}

func (u *Universe) mustContain(x, y int) {
	if !u.torus.Contains(x, y) {
		panic(&core.IndexError{X: x, Y: y, Size: u.Size()})
	}
}

// Reseed clears the grid and seeds it again from src, restarting the
// generation counter. A failing src leaves every cell dead; see SeedErr.
func (u *Universe) Reseed(src io.Reader) {
	u.seed(src)
}

// Reset reseeds from a deterministic generator so equal seeds give equal
// grids.
func (u *Universe) Reset(seed int64) {
	u.seed(core.NewRNG(seed))
}
