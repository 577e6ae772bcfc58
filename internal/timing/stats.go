package timing

import (
	"log/slog"
	"time"
)

// Report summarizes one measurement window.
type Report struct {
	Loops       int
	LoopsPerSec float64
	AvgStep     time.Duration
	AvgRender   time.Duration
}

// LogValue renders the report as a slog group.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("loops", r.Loops),
		slog.Float64("loops_per_sec", r.LoopsPerSec),
		slog.Duration("avg_step", r.AvgStep),
		slog.Duration("avg_render", r.AvgRender),
	)
}

// Stats accumulates step and render timings and closes a Report every
// window.
type Stats struct {
	window time.Duration
	start  time.Time

	loops       int
	stepTotal   time.Duration
	renderTotal time.Duration

	last Report
}

// NewStats starts a measurement window at now.
func NewStats(window time.Duration, now time.Time) *Stats {
	if window <= 0 {
		window = 10 * time.Second
	}
	return &Stats{window: window, start: now}
}

// Record adds one loop iteration.
func (s *Stats) Record(step, render time.Duration) {
	s.loops++
	s.stepTotal += step
	s.renderTotal += render
}

// Tick closes the window if it has elapsed at now. It reports false while
// the window is still open or when no loops were recorded in it.
func (s *Stats) Tick(now time.Time) (Report, bool) {
	elapsed := now.Sub(s.start)
	if elapsed < s.window {
		return Report{}, false
	}
	defer s.restart(now)
	if s.loops == 0 {
		return Report{}, false
	}
	r := Report{
		Loops:       s.loops,
		LoopsPerSec: float64(s.loops) / elapsed.Seconds(),
		AvgStep:     s.stepTotal / time.Duration(s.loops),
		AvgRender:   s.renderTotal / time.Duration(s.loops),
	}
	s.last = r
	return r, true
}

// Last returns the most recent closed report.
func (s *Stats) Last() Report { return s.last }

func (s *Stats) restart(now time.Time) {
	s.start = now
	s.loops = 0
	s.stepTotal = 0
	s.renderTotal = 0
}
