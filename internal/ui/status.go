package ui

import (
	"fmt"

	"counterlife/internal/timing"
)

// Status is the data the HUD displays.
type Status struct {
	Generation uint64
	Population int
	CellSize   int
	Rate       int
	Paused     bool
	Report     timing.Report
}

// Lines formats s for the HUD, one entry per text row.
func Lines(s Status) []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("gen %d  (%s)", s.Generation, state),
		fmt.Sprintf("alive %d", s.Population),
		fmt.Sprintf("cell %dpx  %d gen/s", s.CellSize, s.Rate),
	}
	if s.Report.Loops > 0 {
		lines = append(lines,
			fmt.Sprintf("loops/s %.0f", s.Report.LoopsPerSec),
			fmt.Sprintf("step %.3fms  draw %.3fms",
				float64(s.Report.AvgStep.Microseconds())/1000,
				float64(s.Report.AvgRender.Microseconds())/1000),
		)
	}
	return lines
}
