// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package search

import (
	"runtime"
	"sync"

	"github.com/cardforge/seedsearch/filter"
	"github.com/cardforge/seedsearch/internal/metrics"
	"github.com/cardforge/seedsearch/log"
	"github.com/cardforge/seedsearch/scalar"
	"github.com/cardforge/seedsearch/sink"
	"github.com/cardforge/seedsearch/vector"
)

// Run launches one worker goroutine per runtime.NumCPU() (spec.md §5:
// "worker pool: fixed-size, one worker goroutine per logical core"),
// each pulling lane-groups from driver until it is exhausted or the
// Context is cancelled, and blocks until every worker returns. Matches
// are pushed into out. Grounded on the teacher's runParallelBenchmark:
// a sync.WaitGroup fans out a fixed goroutine count, each draining a
// shared work source and reporting through shared atomics rather than
// channels. mtr may be nil to disable metrics.
func Run(ctx *Context, f *filter.Filter, driver Driver, out *sink.Sink, logger log.Logger, mtr *metrics.Metrics) {
	RunWithWorkers(ctx, f, driver, out, logger, mtr, runtime.NumCPU())
}

// RunWithWorkers is Run with an explicit worker count, for tests and
// for the CLI's --threads override.
func RunWithWorkers(ctx *Context, f *filter.Filter, driver Driver, out *sink.Sink, logger log.Logger, mtr *metrics.Metrics, workers int) {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	if mtr != nil {
		if ctx.AutoCutoff() {
			mtr.AutoCutoffActive.Set(1)
		} else {
			mtr.AutoCutoffActive.Set(0)
		}
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(id, ctx, f, driver, out, logger, mtr)
		}(w)
	}
	wg.Wait()
}

func runWorker(id int, ctx *Context, f *filter.Filter, driver Driver, out *sink.Sink, logger log.Logger, mtr *metrics.Metrics) {
	groups := 0
	for {
		if ctx.Cancelled() {
			break
		}
		group, count, ok := driver.NextLaneGroup()
		if !ok {
			break
		}
		groups++
		if mtr != nil {
			mtr.LaneGroupsDone.Inc()
		}

		mask := vector.Evaluate(group, count, f)
		for i := 0; i < count; i++ {
			if !mask[i] {
				continue
			}
			if ctx.Cancelled() {
				break
			}

			seed := group[i]
			result := scalar.Evaluate(seed, f)
			if mtr != nil {
				mtr.SeedsEvaluated.Inc()
			}
			if !result.Passed {
				continue
			}
			if !ctx.AcceptResult(result.TotalScore) {
				continue
			}
			if !out.Push(sink.Result{
				Seed:            seed,
				TotalScore:      result.TotalScore,
				PerClauseScores: result.PerClauseScores,
			}) {
				if mtr != nil {
					mtr.ResultsDropped.Inc()
				}
				logger.Warn("result sink full, dropping match", "worker", id, "seed", seed)
				continue
			}
			if mtr != nil {
				mtr.MatchesFound.Inc()
				active := ctx.Snapshot().HighestScore
				if !ctx.AutoCutoff() {
					active = ctx.fixedCutoff
				}
				mtr.ActiveCutoff.Set(float64(active))
			}
		}
	}
	logger.Debug("worker exiting", "worker", id, "lane_groups", groups)
}
