// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stream

import "github.com/cardforge/seedsearch/data"

// TagStream yields an ante's two tags (small blind, then big blind) in
// fixed order (spec.md §4.2 "Tag stream").
type TagStream struct {
	cur  *cursor
	tags []data.TagName
}

func newTagStream(seed string, ante int) *TagStream {
	return &TagStream{cur: newCursor(seed, Descriptor{KindTag, ante, 0})}
}

// Tag returns the i-th tag (0 = small blind, 1 = big blind).
func (t *TagStream) Tag(i int) (data.TagName, bool) {
	if i < 0 || i >= 2 {
		return 0, false
	}
	for len(t.tags) <= i {
		idx := t.cur.chooseUniform(int(data.TagEconomy) + 1)
		t.tags = append(t.tags, data.TagName(idx))
	}
	return t.tags[i], true
}

// VoucherStream yields the single voucher an ante's shop unlocks.
// Resolution (avoiding already-owned vouchers) is data.VoucherAfter; this
// stream only supplies the draw function that table needs.
type VoucherStream struct {
	cur *cursor
}

func newVoucherStream(seed string, ante int) *VoucherStream {
	return &VoucherStream{cur: newCursor(seed, Descriptor{KindVoucher, ante, 0})}
}

// Next resolves this ante's voucher given the vouchers already active
// (owned from prior antes).
func (v *VoucherStream) Next(active map[data.VoucherName]bool) data.VoucherName {
	return data.VoucherAfter(active, v.cur.chooseUniform)
}

// bossPool and finalBossPool partition BossName into the everyday
// rotation and the five "locked" bosses (spec.md §4.2: "boss stream: a
// global rotation with locked-boss memory") reserved for every eighth
// ante's final boss blind.
func bossPool() []data.BossName {
	return []data.BossName{
		data.BossTheHook, data.BossTheClub, data.BossTheWindow, data.BossTheManacle,
		data.BossTheEye, data.BossTheMouth, data.BossThePlant, data.BossTheGoad,
		data.BossTheWater, data.BossTheWheel, data.BossTheArm, data.BossTheFish,
		data.BossTheClique, data.BossTheMark, data.BossTheWall, data.BossTheHouse,
		data.BossThePsychic, data.BossTheOx, data.BossTheFlint,
	}
}

func finalBossPool() []data.BossName {
	return []data.BossName{
		data.BossCeruleanBell, data.BossVerdantLeaf, data.BossVioletVessel,
		data.BossCrimsonHeart, data.BossAmberAcorn,
	}
}

// BossStream yields each ante's boss blind from the global rotation,
// remembering which bosses have already appeared (within their pool) so
// the same boss never repeats until every other boss in its pool has.
type BossStream struct {
	cur *cursor

	seenNormal map[data.BossName]bool
	seenFinal  map[data.BossName]bool
}

func newBossStream(seed string) *BossStream {
	return &BossStream{
		cur:        newCursor(seed, Descriptor{KindBoss, 0, 0}),
		seenNormal: map[data.BossName]bool{},
		seenFinal:  map[data.BossName]bool{},
	}
}

// Next draws the boss for the given ante. Every eighth ante draws from the
// locked final-boss pool; all others draw from the regular rotation.
func (b *BossStream) Next(ante int) data.BossName {
	pool, seen := bossPool(), b.seenNormal
	if ante%8 == 0 {
		pool, seen = finalBossPool(), b.seenFinal
	}

	available := make([]data.BossName, 0, len(pool))
	for _, boss := range pool {
		if !seen[boss] {
			available = append(available, boss)
		}
	}
	if len(available) == 0 {
		for k := range seen {
			delete(seen, k)
		}
		available = pool
	}

	idx := b.cur.chooseUniform(len(available))
	chosen := available[idx]
	seen[chosen] = true
	return chosen
}
