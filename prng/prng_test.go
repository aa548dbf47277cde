// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPseudohashDeterministic(t *testing.T) {
	s0 := SeedState("ALEEZTEE")
	a := Pseudohash("shop1", s0)
	b := Pseudohash("shop1", s0)
	require.Equal(t, a, b)
}

func TestPseudohashKeySensitive(t *testing.T) {
	s0 := SeedState("AAAAAAAA")
	a := Pseudohash("shop1", s0)
	b := Pseudohash("shop2", s0)
	require.NotEqual(t, a, b)
}

func TestRandomInUnitRange(t *testing.T) {
	state := SeedState("ABCD1234")
	for i := 0; i < 256; i++ {
		var u float64
		state, u = Random(state)
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

func TestChooseWeightedLowestIndexTieBreak(t *testing.T) {
	// A zero-total-weight table always resolves to index 0.
	_, idx := ChooseWeighted(0.5, []float64{0, 0, 0})
	require.Equal(t, 0, idx)
}

func TestChooseUniformRange(t *testing.T) {
	state := SeedState("ZZZZ9999")
	for i := 0; i < 128; i++ {
		var idx int
		state, idx = ChooseUniform(state, 6)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 6)
	}
}

// TestVectorScalarEquivalence pins spec §8's "Vector-scalar equivalence"
// property: the i-th draw of lane k in the vector path must equal the i-th
// scalar draw for the seed occupying lane k.
func TestVectorScalarEquivalence(t *testing.T) {
	seeds := [LaneWidth]string{"ALEEZTEE", "AAAAAAAA", "PERKEO01", "TELESCOP", "OBSERV01", "TRIBOULT", "CHICOT01", "BLUEPRNT"}

	vecStates := SeedStateVec(seeds)
	scalarStates := make([]State, LaneWidth)
	for k, s := range seeds {
		scalarStates[k] = SeedState(s)
	}
	for k := range seeds {
		require.Equal(t, scalarStates[k], vecStates[k], "lane %d seed state mismatch", k)
	}

	keys := [LaneWidth]string{"shop1", "shop1", "shop1", "shop1", "shop1", "shop1", "shop1", "shop1"}
	for round := 0; round < 16; round++ {
		vecStates = PseudohashVec(keys, vecStates)
		for k := range seeds {
			scalarStates[k] = Pseudohash(keys[k], scalarStates[k])
			require.Equal(t, scalarStates[k], vecStates[k], "round %d lane %d mismatch", round, k)
		}
	}

	weights := []float64{2, 3, 5, 1}
	vecStates, vecIdx := ChooseWeightedVec(vecStates, weights)
	for k := range seeds {
		var scalarIdx int
		scalarStates[k], scalarIdx = ChooseWeighted(scalarStates[k], weights)
		require.Equal(t, scalarStates[k], vecStates[k], "weighted lane %d state mismatch", k)
		require.Equal(t, scalarIdx, vecIdx[k], "weighted lane %d index mismatch", k)
	}
}
