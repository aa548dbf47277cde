// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package search

import (
	"sync/atomic"

	"github.com/cardforge/seedsearch/vector"
)

// seedLength is the fixed length of every seed the game accepts.
const seedLength = 8

// seedAlphabet is the fixed alphabet seeds are drawn from, with the
// visually ambiguous glyphs 0/O and 1/I dropped (spec.md §3 Seed: "a
// fixed alphabet... minus ambiguous glyphs as the runtime defines").
const seedAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

//go:generate mockgen -destination=searchmock/driver.go -package=searchmock github.com/cardforge/seedsearch/search Driver

// Driver hands out lane-groups of seeds to evaluate (spec.md §6 Driver).
// NextLaneGroup returns the seeds to evaluate, how many of the LaneWidth
// slots are populated, and false once the space is exhausted.
type Driver interface {
	NextLaneGroup() (group vector.LaneGroup, count int, ok bool)
}

// SequentialDriver is the reference Driver: it walks the seed space in
// ascending lexicographic order over seedAlphabet, handing out
// LaneWidth seeds at a time. maxSeeds bounds the space so a run
// terminates instead of enumerating alphabet^8 seeds; pass 0 to walk
// the entire space starting from index 0 (an exhaustive search is the
// caller's choice, not this driver's — see spec.md §5's note that full
// enumeration is the default exploration strategy).
type SequentialDriver struct {
	counter  atomic.Uint64
	maxSeeds uint64
}

// NewSequentialDriver constructs a driver over the first maxSeeds seeds
// in alphabetical order. maxSeeds <= 0 means unbounded (alphabet^8).
func NewSequentialDriver(maxSeeds int) *SequentialDriver {
	d := &SequentialDriver{}
	if maxSeeds > 0 {
		d.maxSeeds = uint64(maxSeeds)
	} else {
		d.maxSeeds = totalSeedSpace()
	}
	return d
}

func totalSeedSpace() uint64 {
	total := uint64(1)
	for i := 0; i < seedLength; i++ {
		total *= uint64(len(seedAlphabet))
	}
	return total
}

// NextLaneGroup atomically claims the next LaneWidth seed indices and
// decodes them. Safe for concurrent callers: each worker races on the
// same counter via atomic.Add, so no two workers ever receive
// overlapping indices.
func (d *SequentialDriver) NextLaneGroup() (vector.LaneGroup, int, bool) {
	start := d.counter.Add(vector.LaneWidth) - vector.LaneWidth
	if start >= d.maxSeeds {
		return vector.LaneGroup{}, 0, false
	}

	var group vector.LaneGroup
	count := 0
	for i := 0; i < vector.LaneWidth; i++ {
		idx := start + uint64(i)
		if idx >= d.maxSeeds {
			break
		}
		group[i] = seedAt(idx)
		count++
	}
	return group, count, true
}

// seedAt decodes idx as a fixed-width seedLength digit string in base
// len(seedAlphabet), matching the ascending lexicographic order the
// reference implementation enumerates in.
func seedAt(idx uint64) string {
	base := uint64(len(seedAlphabet))
	digits := make([]byte, seedLength)
	for i := seedLength - 1; i >= 0; i-- {
		digits[i] = seedAlphabet[idx%base]
		idx /= base
	}
	return string(digits)
}
