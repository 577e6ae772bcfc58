package core

import (
	"encoding/binary"
	"math/rand/v2"
)

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding. It
// doubles as a reproducible entropy source for the engines.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Read fills p with pseudo-random bytes. It never fails.
func (r *RNG) Read(p []byte) (int, error) {
	var word [8]byte
	n := 0
	for n < len(p) {
		binary.LittleEndian.PutUint64(word[:], r.r.Uint64())
		n += copy(p[n:], word[:])
	}
	return n, nil
}

// Int64 returns a non-negative pseudo-random int64, handy for deriving seeds.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
