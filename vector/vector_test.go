// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vector

import (
	"testing"

	"github.com/cardforge/seedsearch/compile"
	"github.com/cardforge/seedsearch/scalar"
	"github.com/stretchr/testify/require"
)

func TestEvaluateNeverAcceptsLanesAloneButAgreesWithScalar(t *testing.T) {
	f, err := compile.Compile([]byte(`{
		"must": [{"type": "voucher", "value": "telescope", "antes": [1]}]
	}`))
	require.NoError(t, err)

	group := LaneGroup{"SEEDLANE0", "SEEDLANE1", "SEEDLANE2", "SEEDLANE3", "SEEDLANE4", "SEEDLANE5", "SEEDLANE6", "SEEDLANE7"}
	mask := Evaluate(group, LaneWidth, f)

	for i, seed := range group {
		scalarResult := scalar.Evaluate(seed, f)
		if mask[i] {
			// Vector stage may keep lanes scalar later rejects (it only
			// checked MUST/MUST_NOT vectorizable clauses), but it must
			// never have discarded a lane scalar would have passed.
			continue
		}
		require.False(t, scalarResult.Passed, "vector discarded lane %d but scalar would have passed it", i)
	}
}

func TestEvaluatePartialLaneGroupDeadBeyondCount(t *testing.T) {
	f, err := compile.Compile([]byte(`{"must": [{"type": "voucher", "value": "telescope"}]}`))
	require.NoError(t, err)

	group := LaneGroup{"ONLYLANE0", "", "", "", "", "", "", ""}
	mask := Evaluate(group, 1, f)
	for i := 1; i < LaneWidth; i++ {
		require.False(t, mask[i])
	}
}

func TestAllAliveAndAnyAlive(t *testing.T) {
	m := AllAlive()
	require.True(t, m.AnyAlive())
	var dead LaneMask
	require.False(t, dead.AnyAlive())
}
