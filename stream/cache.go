// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stream

import "github.com/cardforge/seedsearch/data"

// Cache materializes and memoizes the named streams for one seed
// (spec.md §4.2: "a stream cache maps (kind, ante) to materialized
// state... cleared between seeds"); the soul joker stream is the one
// exception, see SoulJoker. A Cache is not safe for concurrent use;
// scalar.Evaluate builds one per seed and vector.Evaluate one per lane,
// matching spec.md's "between lanes within one lane-group, streams are
// constructed per-lane".
type Cache struct {
	seed  string
	deck  data.Deck
	stake data.Stake

	shops map[int]*ShopStream
	packs map[int]*PackStream
	tags  map[int]*TagStream
	souls map[int]*SoulJokerStream

	voucherStreams  map[int]*VoucherStream
	voucherResolved map[int]data.VoucherName

	boss         *BossStream
	bossResolved map[int]data.BossName

	active                 map[data.VoucherName]bool
	voucherResolvedThrough int
	bossResolvedThrough    int
}

// NewCache constructs an empty stream cache for one seed.
func NewCache(seed string, deck data.Deck, stake data.Stake) *Cache {
	return &Cache{
		seed: seed, deck: deck, stake: stake,
		shops:           map[int]*ShopStream{},
		packs:           map[int]*PackStream{},
		tags:            map[int]*TagStream{},
		voucherStreams:  map[int]*VoucherStream{},
		voucherResolved: map[int]data.VoucherName{},
		boss:            newBossStream(seed),
		bossResolved:    map[int]data.BossName{},
		active:          map[data.VoucherName]bool{},
	}
}

// Shop returns (constructing if needed) the shop stream for an ante.
// Shop effects (Overstock/Overstock+'s slot-count bump, Crystal
// Ball/Omen Globe's tarot-weight bump) depend on which vouchers are
// active by the start of this ante, so the voucher set is force-resolved
// through ante-1 first — regardless of whether the filter carries a
// Voucher clause — to keep the materialized shop independent of which
// other clauses happen to be present (spec.md §3 Stream Descriptor,
// §4.2 "derived from active vouchers").
func (c *Cache) Shop(ante int) *ShopStream {
	if s, ok := c.shops[ante]; ok {
		return s
	}
	// The shop gets its own copy of the vouchers of antes 1..ante-1:
	// c.active keeps growing as later antes resolve, and the shop must
	// not see those.
	active := make(map[data.VoucherName]bool, ante)
	if ante > 1 {
		c.Voucher(ante - 1)
		for a := 1; a < ante; a++ {
			active[c.voucherResolved[a]] = true
		}
	}
	s := newShopStream(c.seed, ante, c.deck, c.stake, active)
	c.shops[ante] = s
	return s
}

// Packs returns the booster pack stream for an ante.
func (c *Cache) Packs(ante int) *PackStream {
	if p, ok := c.packs[ante]; ok {
		return p
	}
	p := newPackStream(c.seed, ante)
	c.packs[ante] = p
	return p
}

// Tags returns the tag stream for an ante.
func (c *Cache) Tags(ante int) *TagStream {
	if t, ok := c.tags[ante]; ok {
		return t
	}
	t := newTagStream(c.seed, ante)
	c.tags[ante] = t
	return t
}

// SoulJoker returns a soul joker stream for an ante, positioned at the
// ante's first soul joker. It is built fresh on every call rather than
// memoized: SoulJokerStream.Next advances the stream, so a shared
// instance would hand a second clause walking the same ante the jokers
// after the ones an earlier clause consumed.
func (c *Cache) SoulJoker(ante int) *SoulJokerStream {
	return newSoulJokerStream(c.seed, ante)
}

// Voucher resolves the voucher for an ante, activating it (and every
// ante before it, in order) in the cache's running active-voucher set so
// later antes' shop/voucher draws see everything unlocked so far
// (spec.md §4.2: active vouchers carry forward ante to ante). Resolving
// ante 5 before ante 3 would otherwise desync that carried-forward
// state, so out-of-order requests are filled sequentially here.
func (c *Cache) Voucher(ante int) data.VoucherName {
	for a := c.voucherResolvedThrough + 1; a <= ante; a++ {
		vs, ok := c.voucherStreams[a]
		if !ok {
			vs = newVoucherStream(c.seed, a)
			c.voucherStreams[a] = vs
		}
		v := vs.Next(c.active)
		c.active[v] = true
		c.voucherResolved[a] = v
	}
	if ante > c.voucherResolvedThrough {
		c.voucherResolvedThrough = ante
	}
	return c.voucherResolved[ante]
}

// Boss returns the boss blind for an ante. The boss stream has rotation
// memory spanning every ante, so — like Voucher above — out-of-order
// queries are filled sequentially from the last resolved ante forward.
func (c *Cache) Boss(ante int) data.BossName {
	for a := c.bossResolvedThrough + 1; a <= ante; a++ {
		c.bossResolved[a] = c.boss.Next(a)
	}
	if ante > c.bossResolvedThrough {
		c.bossResolvedThrough = ante
	}
	return c.bossResolved[ante]
}
