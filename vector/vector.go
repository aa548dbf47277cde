// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vector implements spec.md §4.4: the lane-group pre-filter that
// applies only the filter's vectorizable clauses before the scalar
// evaluator re-verifies everything in full. Go has no portable hardware
// SIMD, so — exactly like prng's VecState — "vector" here means walking
// LaneWidth lanes in lock-step, each through the same clause-checking
// code scalar uses (scalar.CountOccurrences), rather than a second,
// independently written algorithm that could drift from the scalar one.
package vector

import (
	"sort"

	"github.com/cardforge/seedsearch/filter"
	"github.com/cardforge/seedsearch/scalar"
	"github.com/cardforge/seedsearch/stream"
)

// LaneWidth matches prng.LaneWidth: one lane per seed in a lane-group.
const LaneWidth = 8

// LaneGroup is 8 seeds evaluated together.
type LaneGroup [LaneWidth]string

// LaneMask marks which lanes are still alive after the vector stage.
type LaneMask [LaneWidth]bool

// AllAlive returns a mask with every lane set.
func AllAlive() LaneMask {
	var m LaneMask
	for i := range m {
		m[i] = true
	}
	return m
}

// AnyAlive reports whether at least one lane in the mask is still set.
func (m LaneMask) AnyAlive() bool {
	for _, alive := range m {
		if alive {
			return true
		}
	}
	return false
}

// orderedVectorizable partitions a clause slice into vectorizable
// clauses ordered by vectorization strength (spec.md §4.4 step 2: "plain
// joker checks first... then vouchers, tags, tarot/planet/spectral, then
// soul-joker pre-filter").
func orderedVectorizable(clauses []filter.Clause) []filter.Clause {
	out := make([]filter.Clause, 0, len(clauses))
	for _, c := range clauses {
		if c.Vectorizable {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return vectorStrength(out[i].Category) < vectorStrength(out[j].Category)
	})
	return out
}

func vectorStrength(cat filter.Category) int {
	switch cat {
	case filter.CategoryJoker:
		return 0
	case filter.CategoryVoucher:
		return 1
	case filter.CategorySmallBlindTag, filter.CategoryBigBlindTag:
		return 2
	case filter.CategoryTarot, filter.CategoryPlanet, filter.CategorySpectral:
		return 3
	case filter.CategorySoulJoker:
		return 4
	default:
		return 5
	}
}

// Evaluate runs the vector stage over one lane-group, returning the
// surviving lane mask (spec.md §4.4). Lanes at index count and beyond (a
// partial final lane-group) are left dead.
func Evaluate(seeds LaneGroup, count int, f *filter.Filter) LaneMask {
	mask := AllAlive()
	for i := count; i < LaneWidth; i++ {
		mask[i] = false
	}

	musts := orderedVectorizable(f.Must)
	mustNots := orderedVectorizable(f.MustNot)

	var caches [LaneWidth]*stream.Cache
	for i := 0; i < count; i++ {
		caches[i] = stream.NewCache(seeds[i], f.Deck, f.Stake)
	}

	for _, c := range musts {
		for i := 0; i < count; i++ {
			if !mask[i] {
				continue
			}
			if scalar.CountOccurrences(caches[i], c) < c.MinRequired() {
				mask[i] = false
			}
		}
		if !mask.AnyAlive() {
			return mask
		}
	}

	for _, c := range mustNots {
		for i := 0; i < count; i++ {
			if !mask[i] {
				continue
			}
			if scalar.CountOccurrences(caches[i], c) >= c.MinRequired() {
				mask[i] = false
			}
		}
		if !mask.AnyAlive() {
			return mask
		}
	}

	return mask
}
