// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sink

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushAndDrain(t *testing.T) {
	s := New(0)
	require.True(t, s.Push(Result{Seed: "AAAA1111", TotalScore: 3}))
	require.Equal(t, 1, s.Len())

	drained := s.Drain()
	require.Len(t, drained, 1)
	require.Equal(t, 0, s.Len())
}

func TestPushConcurrentProducers(t *testing.T) {
	s := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Push(Result{Seed: "SEED", TotalScore: i})
		}(i)
	}
	wg.Wait()
	require.Len(t, s.Drain(), 50)
}

func TestPushDropsWhenBoundedAndFull(t *testing.T) {
	s := New(2)
	require.True(t, s.Push(Result{Seed: "A"}))
	require.True(t, s.Push(Result{Seed: "B"}))
	require.False(t, s.Push(Result{Seed: "C"}))
	require.Equal(t, 1, s.Dropped())
}

func TestWriteCSVFormat(t *testing.T) {
	var b strings.Builder
	err := WriteCSV(&b, []Result{
		{Seed: "ALEEZTEE", TotalScore: 1, PerClauseScores: nil},
		{Seed: "AAAAAAAA", TotalScore: 10, PerClauseScores: []int{5, 5}},
	})
	require.NoError(t, err)
	require.Equal(t, "ALEEZTEE,1\nAAAAAAAA,10,5,5\n", b.String())
}
