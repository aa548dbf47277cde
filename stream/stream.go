// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stream implements spec.md §4.2: named PRNG streams that
// materialize shop slots, booster packs, tag/voucher/boss rotations, and
// pack contents on demand, plus the (kind, ante)-keyed cache that avoids
// re-deriving a stream already built for a seed.
//
// Every stream is, underneath, one or more prng cursors: a cursor is a
// pure function of (seed, key, position), so two reads at the same
// position always agree (spec.md §3's Stream Descriptor invariant) and
// replaying a seed from scratch reproduces the same sequence (spec.md §8).
package stream

import (
	"fmt"

	"github.com/cardforge/seedsearch/prng"
)

// Kind identifies which named stream a Descriptor refers to. This enum
// replaces the source's string-keyed stream cache (spec.md §9 redesign
// flag: "Stream caching by string key").
type Kind uint8

const (
	KindShopCommonJoker Kind = iota
	KindShopUncommonJoker
	KindShopRareJoker
	KindShopJokerEdition
	KindTarotShop
	KindTarotArcanaPack
	KindPlanetShop
	KindPlanetCelestialPack
	KindSpectralShop
	KindSpectralPack
	KindSoulJoker
	KindBoosterPack
	KindTag
	KindVoucher
	KindBoss
	KindPlayingCardStandardPack
)

// Descriptor identifies one stream instance: spec.md §3's
// (kind, ante, modifier) triple. Modifier disambiguates streams that
// share a (kind, ante) but need an independent cursor: the soul joker
// edition draw (modifier 1), the shop's playing-card draw (modifier 1 on
// the standard-pack kind), and the buffoon-pack joker draws (modifier 2
// on the shop joker kinds). Every other stream uses modifier 0.
type Descriptor struct {
	Kind     Kind
	Ante     int
	Modifier int
}

// cursor is the shared primitive every higher-level stream in this
// package is built from: a monotonically advancing position, combined
// with a stable per-stream key, walked through prng.Pseudohash.
type cursor struct {
	key   string
	state prng.State
	pos   int
}

func newCursor(seed string, d Descriptor) *cursor {
	return &cursor{
		key:   fmt.Sprintf("%d:%d:%d:%s", d.Kind, d.Ante, d.Modifier, seed),
		state: prng.SeedState(seed),
	}
}

// draw advances the cursor by exactly one position and returns the
// resulting uniform double. Every higher-level stream method that
// consumes "one slot" of randomness must call draw (or next*) exactly
// once per slot, even when it discards the result — this is what keeps
// shared cursors (e.g. the pack stream cursor spec.md §4.5 requires to
// advance once per pack slot) in sync across clauses.
func (c *cursor) draw() float64 {
	c.pos++
	c.state = prng.Pseudohash(fmt.Sprintf("%s#%d", c.key, c.pos), c.state)
	return c.state
}

func (c *cursor) chooseWeighted(weights []float64) int {
	c.pos++
	next, idx := prng.ChooseWeighted(c.state, weights)
	c.state = next
	return idx
}

func (c *cursor) chooseUniform(n int) int {
	c.pos++
	next, idx := prng.ChooseUniform(c.state, n)
	c.state = next
	return idx
}

// Position reports how many values have been drawn from this cursor so
// far.
func (c *cursor) Position() int { return c.pos }
