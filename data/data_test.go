// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package data

import (
	"testing"

	"github.com/cardforge/seedsearch/item"
	"github.com/stretchr/testify/require"
)

func TestResolveJoker(t *testing.T) {
	j, ok := ResolveJoker("perkeo")
	require.True(t, ok)
	require.Equal(t, JokerPerkeo, j)
	require.True(t, IsLegendary(j))

	_, ok = ResolveJoker("notarealjoker")
	require.False(t, ok)
}

func TestResolveEditionNone(t *testing.T) {
	require.Equal(t, item.EditionNone, ResolveEdition(0.999))
}

func TestResolveEditionNegativeTakesPriority(t *testing.T) {
	// u below every threshold: negative is checked first in EditionOrder.
	require.Equal(t, item.EditionNegative, ResolveEdition(0.0001))
}

func TestResolveEditionBoundaryIsStrictLessThan(t *testing.T) {
	require.Equal(t, item.EditionNone, ResolveEdition(EditionThresholds[item.EditionNegative]))
}

func TestVoucherAfterDeterministic(t *testing.T) {
	draw := func(n int) int { return 0 }
	active := map[VoucherName]bool{VoucherOverstock: true}
	v1 := VoucherAfter(active, draw)
	v2 := VoucherAfter(active, draw)
	require.Equal(t, v1, v2)
	require.NotEqual(t, VoucherOverstock, v1)
}

func TestVoucherAfterRerollsOwned(t *testing.T) {
	pool := voucherPool()
	active := map[VoucherName]bool{}
	for _, v := range pool[:len(pool)-1] {
		active[v] = true
	}
	draw := func(n int) int { return 0 }
	got := VoucherAfter(active, draw)
	require.Equal(t, pool[len(pool)-1], got)
}
