// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stream

import (
	"github.com/cardforge/seedsearch/data"
	"github.com/cardforge/seedsearch/item"
)

// ShopSlot is one materialized shop offer.
type ShopSlot struct {
	Category data.ShopCategory
	Item     item.Item
}

// ShopStream yields an ante's shop slots in fixed order (spec.md §4.2
// "Shop item stream"). Each named draw below (category, rarity, name,
// edition) is its own cursor/Kind so that re-rolls or partial reads of
// one draw never perturb another — matching the "named streams" model in
// spec.md §4.2: "the edition draw is a separate stream."
type ShopStream struct {
	ante   int
	deck   data.Deck
	stake  data.Stake
	active map[data.VoucherName]bool

	categoryCur *cursor // which category (joker/tarot/planet/spectral/card)
	rarityCur   *cursor // joker rarity
	jokerCur    *cursor // joker name within rarity
	editionCur  *cursor // joker edition
	tarotCur    *cursor
	planetCur   *cursor
	spectralCur *cursor
	cardCur     *cursor // playing cards offered directly in the shop

	slots []ShopSlot
}

func newShopStream(seed string, ante int, deck data.Deck, stake data.Stake, active map[data.VoucherName]bool) *ShopStream {
	return &ShopStream{
		ante: ante, deck: deck, stake: stake, active: active,
		categoryCur: newCursor(seed, Descriptor{KindShopCommonJoker, ante, 0}),
		rarityCur:   newCursor(seed, Descriptor{KindShopUncommonJoker, ante, 0}),
		jokerCur:    newCursor(seed, Descriptor{KindShopRareJoker, ante, 0}),
		editionCur:  newCursor(seed, Descriptor{KindShopJokerEdition, ante, 0}),
		tarotCur:    newCursor(seed, Descriptor{KindTarotShop, ante, 0}),
		planetCur:   newCursor(seed, Descriptor{KindPlanetShop, ante, 0}),
		spectralCur: newCursor(seed, Descriptor{KindSpectralShop, ante, 0}),
		cardCur:     newCursor(seed, Descriptor{KindPlayingCardStandardPack, ante, 1}),
	}
}

// SlotCount returns how many slots this ante's shop offers.
func (s *ShopStream) SlotCount() int {
	return data.ShopSlotCount(s.ante, s.active)
}

// Slot returns the i-th shop slot (0-indexed), materializing it and every
// slot before it if this is the first access. Slots are memoized: calling
// Slot(2) twice returns the same value both times, per the Stream
// Descriptor invariant.
func (s *ShopStream) Slot(i int) (ShopSlot, bool) {
	n := s.SlotCount()
	if i < 0 || i >= n {
		return ShopSlot{}, false
	}
	for len(s.slots) <= i {
		s.slots = append(s.slots, s.nextSlot())
	}
	return s.slots[i], true
}

func (s *ShopStream) nextSlot() ShopSlot {
	weights, categories := data.ShopWeights(s.deck, s.stake, s.ante, s.active).AsSlice()
	catIdx := s.categoryCur.chooseWeighted(weights)
	cat := categories[catIdx]

	switch cat {
	case data.ShopJoker:
		common, uncommon, rare, _ := data.JokerRarityWeights()
		rarityIdx := s.rarityCur.chooseWeighted([]float64{common, uncommon, rare})
		rarity := []item.Rarity{item.RarityCommon, item.RarityUncommon, item.RarityRare}[rarityIdx]
		name := pickJokerOfRarity(s.jokerCur, rarity)
		u := s.editionCur.draw()
		edition := data.ResolveEdition(u)
		return ShopSlot{Category: data.ShopJoker, Item: item.NewJoker(uint8(name), rarity, edition, 0)}
	case data.ShopTarot:
		idx := s.tarotCur.chooseUniform(int(data.TarotTheSoul)) // shop never offers The Soul directly
		return ShopSlot{Category: data.ShopTarot, Item: item.NewCard(item.CategoryTarot, uint8(idx), item.EditionNone)}
	case data.ShopPlanet:
		idx := s.planetCur.chooseUniform(int(data.PlanetEris) + 1)
		return ShopSlot{Category: data.ShopPlanet, Item: item.NewCard(item.CategoryPlanet, uint8(idx), item.EditionNone)}
	case data.ShopSpectral:
		idx := s.spectralCur.chooseUniform(int(data.SpectralBlackHole)) // shop never offers Black Hole directly
		return ShopSlot{Category: data.ShopSpectral, Item: item.NewCard(item.CategorySpectral, uint8(idx), item.EditionNone)}
	default: // data.ShopPlayingCard
		rank, suit, enhancement, seal := drawPlayingCard(s.cardCur)
		return ShopSlot{Category: data.ShopPlayingCard, Item: item.NewPlayingCard(rank, suit, enhancement, seal, item.EditionNone)}
	}
}

// pickJokerOfRarity draws a joker name uniformly within a rarity bucket.
// It walks data's name table (a fixed, declaration-ordered list) rather
// than a map to keep the draw deterministic.
func pickJokerOfRarity(cur *cursor, rarity item.Rarity) data.JokerName {
	candidates := jokersOfRarity(rarity)
	if len(candidates) == 0 {
		return data.JokerJoker
	}
	idx := cur.chooseUniform(len(candidates))
	return candidates[idx]
}

func jokersOfRarity(rarity item.Rarity) []data.JokerName {
	var out []data.JokerName
	for j := data.JokerJoker; j <= data.JokerSocks; j++ {
		if data.RarityOf(j) == rarity {
			out = append(out, j)
		}
	}
	return out
}
