// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stream

import (
	"testing"

	"github.com/cardforge/seedsearch/data"
	"github.com/stretchr/testify/require"
)

func TestShopStreamDeterministicAndMemoized(t *testing.T) {
	s1 := newShopStream("ABCD1234", 1, data.DeckRed, data.StakeWhite, nil)
	s2 := newShopStream("ABCD1234", 1, data.DeckRed, data.StakeWhite, nil)

	require.Equal(t, 4, s1.SlotCount())

	for i := 0; i < s1.SlotCount(); i++ {
		a, ok := s1.Slot(i)
		require.True(t, ok)
		b, ok := s2.Slot(i)
		require.True(t, ok)
		require.Equal(t, a, b)
	}

	// Re-reading slot 0 after materializing later slots must not change it.
	first, _ := s1.Slot(0)
	_, _ = s1.Slot(3)
	again, _ := s1.Slot(0)
	require.Equal(t, first, again)
}

func TestShopStreamOverstockAddsSlot(t *testing.T) {
	base := newShopStream("SEEDXYZ", 2, data.DeckRed, data.StakeWhite, nil)
	require.Equal(t, 6, base.SlotCount())

	withVoucher := newShopStream("SEEDXYZ", 2, data.DeckRed, data.StakeWhite,
		map[data.VoucherName]bool{data.VoucherOverstock: true})
	require.Equal(t, 7, withVoucher.SlotCount())
}

func TestPackStreamDeterministic(t *testing.T) {
	p1 := newPackStream("PACKSEED", 1)
	p2 := newPackStream("PACKSEED", 1)

	require.Equal(t, 4, p1.PackCount())
	for i := 0; i < p1.PackCount(); i++ {
		a, _ := p1.Pack(i)
		b, _ := p2.Pack(i)
		require.Equal(t, a, b)
		require.NotEmpty(t, a.Cards)
	}
}

func TestSoulJokerStreamDrawsFromLegendaryPool(t *testing.T) {
	s := newSoulJokerStream("SOULSEED", 3)
	for i := 0; i < 10; i++ {
		joker := s.Next()
		require.True(t, data.IsLegendary(data.JokerName(joker.BaseType())))
	}
}

func TestVoucherStreamAvoidsOwned(t *testing.T) {
	vs := newVoucherStream("VSEED", 1)
	active := map[data.VoucherName]bool{}
	for i := 0; i < 31; i++ {
		v := vs.Next(active)
		require.False(t, active[v])
		active[v] = true
	}
}

func TestBossStreamRotatesWithoutRepeat(t *testing.T) {
	bs := newBossStream("BOSSSEED")
	seen := map[data.BossName]bool{}
	for ante := 1; ante <= len(bossPool()); ante++ {
		b := bs.Next(ante)
		require.False(t, seen[b], "boss %v repeated before pool exhausted", b)
		seen[b] = true
	}
}

func TestBossStreamFinalAnteDrawsFromLockedPool(t *testing.T) {
	bs := newBossStream("BOSSSEED2")
	b := bs.Next(8)
	isFinal := false
	for _, f := range finalBossPool() {
		if f == b {
			isFinal = true
		}
	}
	require.True(t, isFinal)
}

func TestCacheShopForceResolvesVouchersFirst(t *testing.T) {
	seed := "FORCEVCHR"

	// Cache.Shop must see exactly the active-voucher set that resolving
	// every ante up through ante-1 would produce, even when nothing ever
	// calls Cache.Voucher directly (the common case: a filter with no
	// Voucher clause).
	viaShop := NewCache(seed, data.DeckRed, data.StakeWhite)
	shopStream := viaShop.Shop(3)

	reference := NewCache(seed, data.DeckRed, data.StakeWhite)
	reference.Voucher(1)
	reference.Voucher(2)
	wantStream := newShopStream(seed, 3, data.DeckRed, data.StakeWhite, reference.active)

	require.Equal(t, wantStream.SlotCount(), shopStream.SlotCount())
	for i := 0; i < wantStream.SlotCount(); i++ {
		want, ok := wantStream.Slot(i)
		require.True(t, ok)
		got, ok := shopStream.Slot(i)
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	// Shop(1) needs no prior ante, so it must not touch voucher resolution.
	firstAnte := NewCache(seed, data.DeckRed, data.StakeWhite)
	firstAnte.Shop(1)
	require.Equal(t, 0, firstAnte.voucherResolvedThrough)
}

func TestCacheMemoizesPerAnte(t *testing.T) {
	c := NewCache("CACHESEED", data.DeckRed, data.StakeWhite)
	s1 := c.Shop(1)
	s2 := c.Shop(1)
	require.Same(t, s1, s2)

	v1 := c.Voucher(1)
	require.True(t, c.active[v1])
}

func TestTagStreamTwoTagsPerAnte(t *testing.T) {
	ts := newTagStream("TAGSEED", 1)
	small, ok := ts.Tag(0)
	require.True(t, ok)
	big, ok := ts.Tag(1)
	require.True(t, ok)
	_, ok = ts.Tag(2)
	require.False(t, ok)
	_ = small
	_ = big
}
