// Package timing paces the simulation independently of the display refresh
// rate and keeps the loop performance counters.
package timing

import "time"

// FixedStep decides how many generations are due at a steady rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxBurst    int
}

// NewFixedStep constructs a FixedStep targeting rate generations per second.
// At most maxBurst generations are released per call; older backlog is
// dropped so a slow frame never snowballs.
func NewFixedStep(rate, maxBurst int) *FixedStep {
	if maxBurst <= 0 {
		maxBurst = 1
	}
	fs := &FixedStep{maxBurst: maxBurst}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the generation rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the configured generations per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// Due returns how many generations should run at now. The first call after
// construction or Reset releases exactly one.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		f.accumulator = 0
		return 1
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		delta = 0
	}
	f.accumulator += delta
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > f.maxBurst {
		n = f.maxBurst
		f.accumulator = 0
	}
	return n
}

// Reset forgets elapsed time, e.g. after a pause.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = 0
}
