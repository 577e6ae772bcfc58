package app

import (
	"crypto/rand"
	"io"
	"log/slog"
	"time"

	"counterlife/internal/timing"
	"counterlife/internal/ui"
	"counterlife/pkg/core"
	"counterlife/pkg/palette"
	"counterlife/pkg/sims/life"
)

// Cell size bounds reachable by zooming.
const (
	MinScale = 1
	MaxScale = 12
)

// Controller owns a Universe and drives it from host input: pacing,
// pausing, pointer painting, zoom and reseeding. It holds no ebiten state so
// the whole interaction model runs headless.
type Controller struct {
	u     *life.Universe
	pace  *timing.FixedStep
	stats *timing.Stats
	log   *slog.Logger

	seed     int64
	paused   bool
	tickOnce bool

	drawing   bool
	wasPaused bool
	brush     life.Cell

	frame life.Frame
}

// NewController builds the universe described by cfg.
func NewController(cfg *Config, now time.Time) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := palette.ByName(cfg.Palette, cfg.Seed)
	if err != nil {
		return nil, err
	}
	u, err := life.New(cfg.Width, cfg.Height, cfg.Scale, life.WithEntropy(seedSource(cfg.Seed)), life.WithPalette(m))
	if err != nil {
		return nil, err
	}
	c := &Controller{
		u:     u,
		pace:  timing.NewFixedStep(cfg.GPS, 4),
		stats: timing.NewStats(cfg.Stats, now),
		log:   core.Logger(),
		seed:  cfg.Seed,
	}
	c.frame = u.Rasterizer().Frame()
	return c, nil
}

// seedSource returns the deterministic generator for non-zero seeds and the
// operating system's entropy otherwise.
func seedSource(seed int64) io.Reader {
	if seed == 0 {
		return rand.Reader
	}
	return core.NewRNG(seed)
}

// Universe exposes the simulated grid.
func (c *Controller) Universe() *life.Universe { return c.u }

// Frame returns the framebuffer painted by the last Update.
func (c *Controller) Frame() life.Frame { return c.frame }

// Paused reports whether generations are held.
func (c *Controller) Paused() bool { return c.paused }

// Update runs the generations due at now, repaints changed cells and feeds
// the performance counters.
func (c *Controller) Update(now time.Time) {
	steps := 0
	switch {
	case c.tickOnce:
		steps = 1
		c.tickOnce = false
	case !c.paused:
		steps = c.pace.Due(now)
	}

	start := time.Now()
	c.u.Steps(steps)
	stepped := time.Since(start)

	start = time.Now()
	c.frame = c.u.Render()
	rendered := time.Since(start)

	if steps > 0 {
		c.stats.Record(stepped/time.Duration(steps), rendered)
	}
	if r, ok := c.stats.Tick(now); ok {
		c.log.Info("performance", "report", r, "generation", c.u.Generation(), "population", c.u.Population())
	}
}

// TogglePause starts or stops the simulation.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
	if !c.paused {
		c.pace.Reset()
	}
}

// Resume clears the paused state.
func (c *Controller) Resume() {
	if c.paused {
		c.TogglePause()
	}
}

// StepOnce schedules a single generation while paused.
func (c *Controller) StepOnce() {
	if c.paused {
		c.tickOnce = true
	}
}

// cellAt converts framebuffer pixel coordinates to a cell.
func (c *Controller) cellAt(px, py int) (int, int, bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	s := c.u.CellSize()
	x, y := px/s, py/s
	return x, y, c.u.InBounds(x, y)
}

// PointerDown pauses the simulation and toggles the cell under the pointer.
// The new state becomes the brush for the rest of the drag.
func (c *Controller) PointerDown(px, py int) {
	x, y, ok := c.cellAt(px, py)
	if !ok {
		return
	}
	c.wasPaused = c.paused
	c.paused = true
	c.drawing = true
	c.brush = c.u.Toggle(x, y)
}

// PointerMove paints the brush state while a drag is active.
func (c *Controller) PointerMove(px, py int) {
	if !c.drawing {
		return
	}
	if x, y, ok := c.cellAt(px, py); ok {
		c.u.Set(x, y, c.brush)
	}
}

// PointerUp ends a drag and restores the run state from before it.
func (c *Controller) PointerUp() {
	if !c.drawing {
		return
	}
	c.drawing = false
	if !c.wasPaused {
		c.paused = false
		c.pace.Reset()
	}
}

// Zoom grows (dir > 0) or shrinks (dir < 0) the cell size by one within
// MinScale..MaxScale. It reports whether the size changed.
func (c *Controller) Zoom(dir int) bool {
	size := c.u.CellSize()
	switch {
	case dir > 0 && size < MaxScale:
		size++
	case dir < 0 && size > MinScale:
		size--
	default:
		return false
	}
	if err := c.u.SetCellSize(size); err != nil {
		c.log.Warn("zoom rejected", "cell_size", size, "err", err)
		return false
	}
	c.frame = c.u.Rasterizer().Frame()
	return true
}

// Restart reseeds with the configured seed.
func (c *Controller) Restart() {
	c.u.Reseed(seedSource(c.seed))
	c.afterReseed()
}

// Reseed switches to a new seed and reseeds with it.
func (c *Controller) Reseed(seed int64) {
	c.seed = seed
	c.Restart()
}

func (c *Controller) afterReseed() {
	if err := c.u.SeedErr(); err != nil {
		c.log.Warn("reseed fell back to an empty grid", "err", err)
	}
	c.tickOnce = false
	c.pace.Reset()
	c.frame = c.u.Rasterizer().Frame()
	c.log.Debug("reseeded", "seed", c.seed, "population", c.u.Population())
}

// Status snapshots the values shown on the HUD.
func (c *Controller) Status() ui.Status {
	return ui.Status{
		Generation: c.u.Generation(),
		Population: c.u.Population(),
		CellSize:   c.u.CellSize(),
		Rate:       c.pace.Rate(),
		Paused:     c.paused,
		Report:     c.stats.Last(),
	}
}
