package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"counterlife/pkg/core"
)

type scenario struct {
	candidate string
	reference string
	width     int
	height    int
	steps     int
	seed      int64
}

type result struct {
	seed          int64
	generations   int
	population    int
	candidateTime time.Duration
	referenceTime time.Duration
}

func build(name string, sc scenario) (core.Sim, error) {
	factory, err := core.Lookup(name)
	if err != nil {
		return nil, err
	}
	return factory(map[string]string{
		"w":    strconv.Itoa(sc.width),
		"h":    strconv.Itoa(sc.height),
		"seed": strconv.FormatInt(sc.seed, 10),
	})
}

// run steps both engines in lockstep and fails on the first generation
// where their grids differ.
func run(ctx context.Context, sc scenario) (result, error) {
	res := result{seed: sc.seed}
	cand, err := build(sc.candidate, sc)
	if err != nil {
		return res, err
	}
	ref, err := build(sc.reference, sc)
	if err != nil {
		return res, err
	}
	if idx := firstDiff(cand.Cells(), ref.Cells()); idx >= 0 {
		return res, fmt.Errorf("seed %d: initial grids differ at cell %d", sc.seed, idx)
	}
	for gen := 1; gen <= sc.steps; gen++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		start := time.Now()
		cand.Step()
		res.candidateTime += time.Since(start)

		start = time.Now()
		ref.Step()
		res.referenceTime += time.Since(start)

		if idx := firstDiff(cand.Cells(), ref.Cells()); idx >= 0 {
			w := cand.Size().W
			return res, fmt.Errorf("seed %d: %s and %s diverge at generation %d, cell (%d,%d)",
				sc.seed, sc.candidate, sc.reference, gen, idx%w, idx/w)
		}
		res.generations = gen
	}
	for _, c := range cand.Cells() {
		res.population += int(c)
	}
	return res, nil
}

func firstDiff(a, b []uint8) int {
	if len(a) != len(b) {
		return 0
	}
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
