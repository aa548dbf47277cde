// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package search

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cardforge/seedsearch/vector"
)

func TestSequentialDriverExhaustsAtBound(t *testing.T) {
	d := NewSequentialDriver(10)

	group, count, ok := d.NextLaneGroup()
	require.True(t, ok)
	require.Equal(t, vector.LaneWidth, count)
	require.Equal(t, seedLength, len(group[0]))

	group2, count2, ok := d.NextLaneGroup()
	require.True(t, ok)
	require.Equal(t, 2, count2)

	for i := 0; i < count2; i++ {
		require.NotEqual(t, "", group2[i])
	}

	_, _, ok = d.NextLaneGroup()
	require.False(t, ok)

	// no seed is repeated across the two groups
	seen := map[string]bool{}
	for i := 0; i < count; i++ {
		seen[group[i]] = true
	}
	for i := 0; i < count2; i++ {
		require.False(t, seen[group2[i]], "seed repeated across lane groups")
	}
}

func TestSequentialDriverConcurrentCallersNeverOverlap(t *testing.T) {
	d := NewSequentialDriver(8 * 200)

	var mu sync.Mutex
	seen := map[string]bool{}
	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				group, count, ok := d.NextLaneGroup()
				if !ok {
					return
				}
				mu.Lock()
				for i := 0; i < count; i++ {
					require.False(t, seen[group[i]], "duplicate seed handed to two callers")
					seen[group[i]] = true
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Len(t, seen, 8*200)
}

func TestSeedAtProducesFixedWidthSeeds(t *testing.T) {
	for _, idx := range []uint64{0, 1, 33, 1000000} {
		s := seedAt(idx)
		require.Len(t, s, seedLength)
		for _, r := range s {
			require.Contains(t, seedAlphabet, string(r))
		}
	}
}
