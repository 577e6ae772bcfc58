package timing

import (
	"log/slog"
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	fs := NewFixedStep(10, 3)
	t0 := time.Unix(100, 0)
	if got := fs.Due(t0); got != 1 {
		t.Fatalf("first Due = %d, want 1", got)
	}
	if got := fs.Due(t0.Add(50 * time.Millisecond)); got != 0 {
		t.Fatalf("Due after half a step = %d, want 0", got)
	}
	if got := fs.Due(t0.Add(250 * time.Millisecond)); got != 2 {
		t.Fatalf("Due after 2.5 steps = %d, want 2", got)
	}
	if got := fs.Due(t0.Add(300 * time.Millisecond)); got != 1 {
		t.Fatalf("Due should carry the remainder, got %d", got)
	}
	if got := fs.Due(t0.Add(5 * time.Second)); got != 3 {
		t.Fatalf("backlog should be capped at 3, got %d", got)
	}
	if got := fs.Due(t0.Add(5*time.Second + 10*time.Millisecond)); got != 0 {
		t.Fatalf("dropped backlog came back: %d", got)
	}
}

func TestFixedStepRate(t *testing.T) {
	fs := NewFixedStep(0, 0)
	if fs.Rate() != 60 {
		t.Fatalf("default rate %d, want 60", fs.Rate())
	}
	fs.SetRate(25)
	if fs.Rate() != 25 {
		t.Fatalf("rate %d, want 25", fs.Rate())
	}
	fs.Reset()
	if got := fs.Due(time.Unix(5, 0)); got != 1 {
		t.Fatalf("Due after Reset = %d, want 1", got)
	}
}

func TestStatsWindow(t *testing.T) {
	t0 := time.Unix(0, 0)
	s := NewStats(10*time.Second, t0)
	for i := 0; i < 4; i++ {
		s.Record(2*time.Millisecond, 6*time.Millisecond)
	}
	if _, ok := s.Tick(t0.Add(9 * time.Second)); ok {
		t.Fatal("window closed early")
	}
	r, ok := s.Tick(t0.Add(10 * time.Second))
	if !ok {
		t.Fatal("window did not close")
	}
	if r.Loops != 4 || r.LoopsPerSec != 0.4 {
		t.Fatalf("report %+v, want 4 loops at 0.4/s", r)
	}
	if r.AvgStep != 2*time.Millisecond || r.AvgRender != 6*time.Millisecond {
		t.Fatalf("averages step=%v render=%v", r.AvgStep, r.AvgRender)
	}
	if s.Last() != r {
		t.Fatal("Last should return the closed report")
	}
	if _, ok := s.Tick(t0.Add(21 * time.Second)); ok {
		t.Fatal("empty window must not report")
	}
	if r.LogValue().Kind() != slog.KindGroup {
		t.Fatal("report should log as a group")
	}
}
