package core

import (
	"slices"
	"testing"
)

type stubSim struct{}

func (stubSim) Name() string       { return "stub" }
func (stubSim) Size() Size         { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64)        {}
func (stubSim) Step()              {}
func (stubSim) Generation() uint64 { return 0 }
func (stubSim) Cells() []uint8     { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	Register("nil-factory", nil)
	Register("zz-stub", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	t.Cleanup(func() { delete(sims, "zz-stub") })

	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name must not register")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factory must not register")
	}
	f, err := Lookup("zz-stub")
	if err != nil {
		t.Fatal(err)
	}
	sim, _ := f(nil)
	if sim.Name() != "stub" {
		t.Fatalf("factory built %q", sim.Name())
	}
	if !slices.Contains(Names(), "zz-stub") || !slices.IsSorted(Names()) {
		t.Fatalf("Names() = %v", Names())
	}
	if _, err := Lookup("missing"); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}
