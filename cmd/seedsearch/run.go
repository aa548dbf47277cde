// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/cardforge/seedsearch/compile"
	"github.com/cardforge/seedsearch/config"
	"github.com/cardforge/seedsearch/internal/httpapi"
	"github.com/cardforge/seedsearch/internal/metrics"
	applog "github.com/cardforge/seedsearch/log"
	"github.com/cardforge/seedsearch/search"
	"github.com/cardforge/seedsearch/sink"
)

func runCmd() *cobra.Command {
	var (
		configPath  string
		cutoff      int
		autoCutoff  bool
		threads     int
		deck        string
		stake       string
		maxSeeds    int
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search the seed space and stream matches to stdout as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(runFlags{
				configPath:  configPath,
				cutoff:      cutoff,
				autoCutoff:  autoCutoff,
				threads:     threads,
				deck:        deck,
				stake:       stake,
				maxSeeds:    maxSeeds,
				metricsAddr: metricsAddr,
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the filter JSON document")
	cmd.Flags().IntVar(&cutoff, "cutoff", 1, "fixed score cutoff (ignored with --auto-cutoff)")
	cmd.Flags().BoolVar(&autoCutoff, "auto-cutoff", false, "enable running-maximum cutoff mode")
	cmd.Flags().IntVar(&threads, "threads", 0, "worker goroutines (0 = one per logical core)")
	cmd.Flags().StringVar(&deck, "deck", "red", "deck name")
	cmd.Flags().StringVar(&stake, "stake", "white", "stake name")
	cmd.Flags().IntVar(&maxSeeds, "max-seeds", 0, "bound the seed space walked (0 = unbounded)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "optional listen address for /healthz, /metrics, /stats")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

type runFlags struct {
	configPath  string
	cutoff      int
	autoCutoff  bool
	threads     int
	deck        string
	stake       string
	maxSeeds    int
	metricsAddr string
}

func runSearch(flags runFlags) error {
	builder := config.NewBuilder().
		WithFilterPath(flags.configPath).
		WithDeck(flags.deck).
		WithStake(flags.stake).
		WithThreads(flags.threads).
		WithMaxSeeds(flags.maxSeeds)
	if flags.autoCutoff {
		builder = builder.WithAutoCutoff(0)
	} else {
		builder = builder.WithFixedCutoff(flags.cutoff)
	}

	cfg, err := builder.Build()
	if err != nil {
		return configError(err)
	}

	raw, err := os.ReadFile(cfg.FilterPath)
	if err != nil {
		return configError(fmt.Errorf("reading %s: %w", cfg.FilterPath, err))
	}

	f, err := compile.Compile(raw)
	if err != nil {
		return configError(err)
	}
	f.Deck, f.Stake = cfg.Deck, cfg.Stake
	f.Cutoff = cfg.Cutoff

	logger := applog.New("seedsearch")
	mtr, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		return runtimeError(fmt.Errorf("metrics setup: %w", err))
	}

	ctx := search.NewContext(f.Cutoff, cfg.AutoCutoff)
	driver := search.NewSequentialDriver(cfg.MaxSeeds)
	out := sink.New(0)

	if flags.metricsAddr != "" {
		go func() {
			srv := &http.Server{Addr: flags.metricsAddr, Handler: httpapi.NewRouter(ctx)}
			logger.Info("operational surface listening", "addr", flags.metricsAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("operational surface stopped", "err", err)
			}
		}()
	}

	started := time.Now()
	if cfg.Threads > 0 {
		search.RunWithWorkers(ctx, f, driver, out, logger, mtr, cfg.Threads)
	} else {
		search.Run(ctx, f, driver, out, logger, mtr)
	}

	results := out.Drain()
	if err := sink.WriteCSV(os.Stdout, results); err != nil {
		return runtimeError(fmt.Errorf("writing results: %w", err))
	}

	logger.Info("search complete",
		"matches", len(results),
		"dropped", out.Dropped(),
		"elapsed", time.Since(started).String())
	return nil
}
