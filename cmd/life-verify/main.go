package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"counterlife/internal/app"
	"counterlife/pkg/core"
	_ "counterlife/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

func main() {
	candidate := flag.String("a", "life", "engine under test")
	reference := flag.String("b", "life-naive", "reference engine")
	width := flag.Int("w", 64, "grid width")
	height := flag.Int("h", 64, "grid height")
	steps := flag.Int("steps", 200, "generations per run")
	runs := flag.Int("runs", 32, "number of seeds to check")
	seed := flag.Int64("seed", 1, "first seed; run i uses seed+i")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	level, err := app.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	core.SetLogger(logger)

	results := make([]result, *runs)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	started := time.Now()
	for i := 0; i < *runs; i++ {
		sc := scenario{
			candidate: *candidate,
			reference: *reference,
			width:     *width,
			height:    *height,
			steps:     *steps,
			seed:      *seed + int64(i),
		}
		g.Go(func() error {
			res, err := run(ctx, sc)
			if err != nil {
				return err
			}
			results[i] = res
			logger.Debug("run complete", "seed", res.seed, "population", res.population)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	var candTotal, refTotal time.Duration
	for _, r := range results {
		candTotal += r.candidateTime
		refTotal += r.referenceTime
	}
	fmt.Printf("%d runs of %d generations on %dx%d matched in %v\n", *runs, *steps, *width, *height, time.Since(started).Round(time.Millisecond))
	if *runs > 0 && *steps > 0 {
		gens := time.Duration(*runs * *steps)
		fmt.Printf("%-12s %v/gen\n", *candidate, candTotal/gens)
		fmt.Printf("%-12s %v/gen\n", *reference, refTotal/gens)
		if candTotal > 0 {
			fmt.Printf("speedup      %.1fx\n", float64(refTotal)/float64(candTotal))
		}
	}
}
