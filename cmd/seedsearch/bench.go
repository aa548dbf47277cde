// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardforge/seedsearch/compile"
	"github.com/cardforge/seedsearch/search"
	"github.com/cardforge/seedsearch/sink"
)

// benchCmd times a bounded search run, grounded on
// teacher_cmd/consensus/benchmark.go's runBenchmark: print the
// configuration, run the workload, report a throughput figure.
func benchCmd() *cobra.Command {
	var (
		configPath string
		seeds      int
		threads    int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure seed evaluation throughput against a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(configPath, seeds, threads)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the filter JSON document")
	cmd.Flags().IntVar(&seeds, "seeds", 8*100000, "number of seeds to walk")
	cmd.Flags().IntVar(&threads, "threads", 0, "worker goroutines (0 = one per logical core)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runBench(configPath string, seeds, threads int) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return configError(fmt.Errorf("reading %s: %w", configPath, err))
	}
	f, err := compile.Compile(raw)
	if err != nil {
		return configError(err)
	}

	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	fmt.Printf("=== Seed Search Benchmark ===\n")
	fmt.Printf("Seeds: %d\n", seeds)
	fmt.Printf("Threads: %d\n", threads)
	fmt.Printf("Must: %d  Should: %d  MustNot: %d\n", len(f.Must), len(f.Should), len(f.MustNot))

	ctx := search.NewContext(f.Cutoff, time.Hour)
	driver := search.NewSequentialDriver(seeds)
	out := sink.New(0)

	start := time.Now()
	search.RunWithWorkers(ctx, f, driver, out, nil, nil, threads)
	elapsed := time.Since(start)

	matches := out.Len()
	rate := float64(seeds) / elapsed.Seconds()
	fmt.Printf("Elapsed: %s\n", elapsed)
	fmt.Printf("Matches: %d\n", matches)
	fmt.Printf("Throughput: %.0f seeds/sec\n", rate)
	return nil
}
