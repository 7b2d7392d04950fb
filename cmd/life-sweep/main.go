package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

type scenarioResult struct {
	seed       int64
	initial    int
	settlement life.Settlement
}

func main() {
	size := flag.Int("grid", 25, "cells per row and column")
	scenarios := flag.Int("scenarios", 256, "number of random grids to evaluate")
	density := flag.Float64("density", 0.35, "initial live cell probability")
	seed := flag.Int64("seed", 1, "seed of the first scenario; later scenarios count up")
	maxGen := flag.Int("max", 1000, "generations to run before giving up on a scenario")
	boundaryName := flag.String("boundary", life.Clamp.String(), "neighbor lookup at the border: clamp, wrap or dead")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	boundary, ok := life.ParseBoundary(*boundaryName)
	if !ok {
		log.Fatalf("unknown boundary %q", *boundaryName)
	}
	if *size <= 0 || *scenarios <= 0 || *workers <= 0 {
		log.Fatal("grid, scenarios and workers must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d grids of %dx%d (%d workers, density %.2f, boundary %s, max %d generations)\n",
		*scenarios, *size, *size, *workers, *density, boundary, *maxGen)

	start := time.Now()
	results := make([]scenarioResult, *scenarios)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(*workers)
	for i := range results {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runScenario(*seed+int64(i), *size, *density, boundary, *maxGen)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalf("sweep interrupted: %v", err)
	}
	elapsed := time.Since(start)

	report(results, elapsed)
}

func runScenario(seed int64, size int, density float64, boundary life.Boundary, maxGen int) scenarioResult {
	grid := core.NewGrid(size)
	core.NewRNG(seed).FillDensity(grid.Cells(), density)
	return scenarioResult{
		seed:       seed,
		initial:    grid.Population(),
		settlement: life.Settle(grid, boundary, maxGen),
	}
}

func report(results []scenarioResult, elapsed time.Duration) {
	counts := map[life.Outcome]int{}
	periods := map[int]int{}
	settledGens := 0
	settled := 0
	for _, res := range results {
		s := res.settlement
		counts[s.Outcome]++
		if s.Outcome == life.Oscillator {
			periods[s.Period]++
		}
		if s.Outcome != life.Unsettled {
			settledGens += s.Generation
			settled++
		}
	}

	fmt.Printf("\nOutcomes (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, o := range []life.Outcome{life.Extinct, life.StillLife, life.Oscillator, life.Unsettled} {
		fmt.Printf("  %-10s %d\n", o, counts[o])
	}
	if len(periods) > 0 {
		keys := make([]int, 0, len(periods))
		for p := range periods {
			keys = append(keys, p)
		}
		sort.Ints(keys)
		fmt.Println("Oscillator periods:")
		for _, p := range keys {
			fmt.Printf("  p%-3d %d\n", p, periods[p])
		}
	}
	if settled > 0 {
		fmt.Printf("Mean settle generation: %.1f\n", float64(settledGens)/float64(settled))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].settlement.Generation > results[j].settlement.Generation
	})
	fmt.Println("\nLongest-lived scenarios:")
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		s := res.settlement
		fmt.Printf("%2d) seed=%d initial=%d outcome=%s gen=%d period=%d population=%d\n",
			i+1, res.seed, res.initial, s.Outcome, s.Generation, s.Period, s.Population)
	}
}
