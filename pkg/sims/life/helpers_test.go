package life

import (
	"bytes"
	"testing"

	"counterlife/pkg/core"
)

// newDead returns a universe with every cell dead.
func newDead(t testing.TB, w, h, scale int) *Universe {
	t.Helper()
	zeros := make([]byte, core.SeedLen(w*h))
	u, err := New(w, h, scale, WithEntropy(bytes.NewReader(zeros)))
	if err != nil {
		t.Fatalf("New(%d, %d, %d): %v", w, h, scale, err)
	}
	return u
}

// checkCounts compares every stored neighbour count with a brute-force
// count over the current grid.
func checkCounts(t *testing.T, u *Universe) {
	t.Helper()
	w, h := u.torus.W, u.torus.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := u.torus.CountAlive(u.cells, x, y)
			if got := int(u.count.cur[y*w+x]); got != want {
				t.Fatalf("count at (%d,%d) = %d, brute force %d (generation %d)", x, y, got, want, u.generation)
			}
		}
	}
}

func alive(cells []uint8) int {
	n := 0
	for _, c := range cells {
		n += int(c)
	}
	return n
}
