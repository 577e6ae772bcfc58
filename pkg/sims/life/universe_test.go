package life

import (
	"errors"
	"math"
	"slices"
	"testing"

	"counterlife/pkg/core"
)

func TestSetMaintainsCounts(t *testing.T) {
	u := newDead(t, 7, 5, 1)
	rng := core.NewRNG(3).Source()
	for i := 0; i < 500; i++ {
		x, y := rng.IntN(7), rng.IntN(5)
		c := Dead
		if rng.IntN(2) == 1 {
			c = Alive
		}
		u.Set(x, y, c)
		if u.Get(x, y) != c {
			t.Fatalf("Get(%d,%d) = %v after Set %v", x, y, u.Get(x, y), c)
		}
	}
	checkCounts(t, u)
	if got, want := u.Population(), alive(u.Cells()); got != want {
		t.Fatalf("population %d, grid has %d live cells", got, want)
	}
}

func TestSetIdempotent(t *testing.T) {
	u := newDead(t, 6, 6, 1)
	u.Set(2, 3, Alive)
	after := slices.Clone(u.count.cur)
	u.Set(2, 3, Alive)
	if !slices.Equal(after, u.count.cur) {
		t.Fatal("second Set(Alive) changed neighbour counts")
	}
	if u.Population() != 1 {
		t.Fatalf("population %d after repeated set, want 1", u.Population())
	}

	u.Set(2, 3, Dead)
	cleared := slices.Clone(u.count.cur)
	u.Set(2, 3, Dead)
	if !slices.Equal(cleared, u.count.cur) {
		t.Fatal("second Set(Dead) changed neighbour counts")
	}
	for i, c := range u.count.cur {
		if c != 0 {
			t.Fatalf("count %d = %d on an empty grid", i, c)
		}
	}
}

func TestSetWrapsAroundCorner(t *testing.T) {
	const w, h = 6, 4
	u := newDead(t, w, h, 1)
	u.Set(0, 0, Alive)

	want := map[[2]int]bool{
		{w - 1, h - 1}: true,
		{w - 1, 0}:     true,
		{w - 1, 1}:     true,
		{0, h - 1}:     true,
		{0, 1}:         true,
		{1, h - 1}:     true,
		{1, 0}:         true,
		{1, 1}:         true,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got := u.count.cur[y*w+x]
			expect := uint8(0)
			if want[[2]int{x, y}] {
				expect = 1
			}
			if got != expect {
				t.Fatalf("count at (%d,%d) = %d, want %d", x, y, got, expect)
			}
		}
	}
}

func TestToggle(t *testing.T) {
	u := newDead(t, 4, 4, 1)
	if got := u.Toggle(1, 2); got != Alive {
		t.Fatalf("first toggle gave %v, want alive", got)
	}
	if got := u.Toggle(1, 2); got != Dead {
		t.Fatalf("second toggle gave %v, want dead", got)
	}
	checkCounts(t, u)
}

func TestOutOfBoundsPanics(t *testing.T) {
	u := newDead(t, 4, 3, 1)
	cases := []struct {
		name string
		fn   func()
	}{
		{"get negative x", func() { u.Get(-1, 0) }},
		{"get y too large", func() { u.Get(0, 3) }},
		{"set x too large", func() { u.Set(4, 0, Alive) }},
		{"set negative y", func() { u.Set(0, -1, Alive) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("expected error panic, got %v", r)
				}
				var ie *core.IndexError
				if !errors.As(err, &ie) || !errors.Is(err, core.ErrIndexOutOfBounds) {
					t.Fatalf("unexpected panic value %v", err)
				}
			}()
			tc.fn()
		})
	}
	if u.Population() != 0 {
		t.Fatal("rejected Set must not change the grid")
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	cases := []struct{ w, h, s int }{
		{0, 4, 1},
		{4, -1, 1},
		{4, 4, 0},
		{math.MaxInt / 2, 3, 1},
	}
	for _, tc := range cases {
		u, err := New(tc.w, tc.h, tc.s)
		if err == nil || u != nil {
			t.Fatalf("New(%d, %d, %d) = %v, %v; want nil universe and error", tc.w, tc.h, tc.s, u, err)
		}
		if !errors.Is(err, core.ErrConstruction) {
			t.Fatalf("New(%d, %d, %d) error %v does not wrap ErrConstruction", tc.w, tc.h, tc.s, err)
		}
	}
}
