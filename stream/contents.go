// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stream

import (
	"github.com/cardforge/seedsearch/data"
	"github.com/cardforge/seedsearch/item"
)

// arcanaCard draws one Arcana-pack card: either The Soul (at
// data.SoulSlotChanceArcana, checked first against its own draw) or a
// regular tarot card. The Soul check is a separate draw from the name
// draw so a pack that never rolls Soul consumes exactly the same number
// of name draws a non-soul-aware implementation would.
func arcanaCard(cur *cursor) item.Item {
	if cur.draw() < data.SoulSlotChanceArcana {
		return item.NewCard(item.CategoryTarot, data.SoulTarotType, item.EditionNone)
	}
	idx := cur.chooseUniform(int(data.TarotTheSoul))
	return item.NewCard(item.CategoryTarot, uint8(idx), item.EditionNone)
}

// celestialCard draws one Celestial-pack card: a planet. Celestial packs
// carry no Soul slot (only Arcana and Spectral do, per spec.md §4.2).
func celestialCard(cur *cursor) item.Item {
	idx := cur.chooseUniform(int(data.PlanetEris) + 1)
	return item.NewCard(item.CategoryPlanet, uint8(idx), item.EditionNone)
}

// spectralCard draws one Spectral-pack card, which has two rare slots:
// The Soul and The Black Hole, each checked against its own draw before
// falling back to a regular spectral card.
func spectralCard(cur *cursor) item.Item {
	if cur.draw() < data.SoulSlotChanceSpectral {
		return item.NewCard(item.CategoryTarot, data.SoulTarotType, item.EditionNone)
	}
	if cur.draw() < data.BlackHoleSlotChanceSpectral {
		return item.NewCard(item.CategorySpectral, data.BlackHoleSpectralType, item.EditionNone)
	}
	idx := cur.chooseUniform(int(data.SpectralBlackHole))
	return item.NewCard(item.CategorySpectral, uint8(idx), item.EditionNone)
}

// buffoonCard draws one Buffoon-pack card: a joker, via the same
// rarity-then-name-then-edition draw sequence the shop joker stream uses,
// just against this pack's own cursors.
func buffoonCard(rarityCur, nameCur, editionCur *cursor) item.Item {
	common, uncommon, rare, _ := data.JokerRarityWeights()
	rarityIdx := rarityCur.chooseWeighted([]float64{common, uncommon, rare})
	rarity := []item.Rarity{item.RarityCommon, item.RarityUncommon, item.RarityRare}[rarityIdx]
	name := pickJokerOfRarity(nameCur, rarity)
	edition := data.ResolveEdition(editionCur.draw())
	return item.NewJoker(uint8(name), rarity, edition, 0)
}

// drawPlayingCard draws a standard playing card's full identity: rank,
// suit, enhancement, and seal, each its own draw against the same cursor
// (a standard pack or shop slot advances this cursor by four positions
// per card).
func drawPlayingCard(cur *cursor) (rank item.Rank, suit item.Suit, enhancement item.Enhancement, seal item.Seal) {
	rank = item.Rank(cur.chooseUniform(int(item.RankAce) + 1))
	suit = item.Suit(cur.chooseUniform(int(item.SuitDiamonds) + 1))
	enhancement = item.Enhancement(cur.chooseUniform(int(item.EnhancementLucky) + 1))
	seal = item.Seal(cur.chooseUniform(int(item.SealPurple) + 1))
	return rank, suit, enhancement, seal
}
