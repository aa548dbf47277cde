// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scalar

import (
	"github.com/cardforge/seedsearch/filter"
	"github.com/cardforge/seedsearch/stream"
)

// Result is one seed's full scalar evaluation, before cutoff acceptance
// (the search package owns the cutoff/auto-cutoff decision — spec.md §5:
// auto-cutoff state is shared across workers, not a per-seed concern).
type Result struct {
	Seed             string
	Passed           bool
	TotalScore       int
	PerClauseScores  []int
}

// Evaluate re-verifies every MUST/MUST_NOT clause and scores every
// SHOULD clause for one seed (spec.md §4.5). It builds its own stream
// cache: callers that already vector-filtered a lane group still pass
// through here for the authoritative, full-cursor re-check.
func Evaluate(seed string, f *filter.Filter) Result {
	cache := stream.NewCache(seed, f.Deck, f.Stake)

	for _, c := range f.Must {
		if CountOccurrences(cache, c) < c.MinRequired() {
			return Result{Seed: seed, Passed: false}
		}
	}
	for _, c := range f.MustNot {
		if CountOccurrences(cache, c) >= c.MinRequired() {
			return Result{Seed: seed, Passed: false}
		}
	}

	scores := make([]int, len(f.Should))
	total := 1 // base credit for passing MUST, spec.md §4.5 step 4
	for i, c := range f.Should {
		occurrences := CountOccurrences(cache, c)
		if c.Min > 0 && occurrences < c.Min {
			continue
		}
		scores[i] = c.Score * occurrences
		total += scores[i]
	}

	return Result{Seed: seed, Passed: true, TotalScore: total, PerClauseScores: scores}
}
