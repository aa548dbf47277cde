// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scalar

import (
	"sort"

	"github.com/cardforge/seedsearch/data"
	"github.com/cardforge/seedsearch/filter"
	"github.com/cardforge/seedsearch/item"
	"github.com/cardforge/seedsearch/stream"
	"github.com/cardforge/seedsearch/util/set"
)

// sortedAntes returns a clause's ante set in ascending order (spec.md §5:
// "per-clause ante iteration is ascending").
func sortedAntes(antes set.Set[int]) []int {
	out := antes.List()
	sort.Ints(out)
	return out
}

// CountOccurrences is the pack-walker / shop-walker dispatch for spec.md
// §4.5 step 3: "count occurrences across configured antes and sources."
// Each branch walks exactly the sources a clause's category can come
// from, honoring the clause's shop/pack slot restriction and requireMega.
func CountOccurrences(cache *stream.Cache, c filter.Clause) int {
	count := 0
	for _, ante := range sortedAntes(c.Antes) {
		switch c.Category {
		case filter.CategoryJoker:
			count += countShopSlots(cache, c, ante, isJokerSlot)
			count += countPackSlots(cache, c, ante, data.PackBuffoon)
		case filter.CategorySoulJoker:
			count += countSoulJokers(cache, c, ante)
		case filter.CategoryTarot:
			count += countShopSlots(cache, c, ante, isTarotSlot)
			count += countPackSlots(cache, c, ante, data.PackArcana)
		case filter.CategoryPlanet:
			count += countShopSlots(cache, c, ante, isPlanetSlot)
			count += countPackSlots(cache, c, ante, data.PackCelestial)
		case filter.CategorySpectral:
			count += countShopSlots(cache, c, ante, isSpectralSlot)
			count += countPackSlots(cache, c, ante, data.PackSpectral)
		case filter.CategoryPlayingCard:
			count += countShopSlots(cache, c, ante, isPlayingCardSlot)
			count += countPackSlots(cache, c, ante, data.PackStandard)
		case filter.CategorySmallBlindTag:
			count += countTag(cache, c, ante, 0)
		case filter.CategoryBigBlindTag:
			count += countTag(cache, c, ante, 1)
		case filter.CategoryVoucher:
			if matchesVoucher(cache.Voucher(ante), c) {
				count++
			}
		case filter.CategoryBoss:
			if matchesBoss(cache.Boss(ante), c) {
				count++
			}
		}
	}
	return count
}

func isJokerSlot(cat data.ShopCategory) bool  { return cat == data.ShopJoker }
func isTarotSlot(cat data.ShopCategory) bool  { return cat == data.ShopTarot }
func isPlanetSlot(cat data.ShopCategory) bool { return cat == data.ShopPlanet }
func isSpectralSlot(cat data.ShopCategory) bool {
	return cat == data.ShopSpectral
}
func isPlayingCardSlot(cat data.ShopCategory) bool { return cat == data.ShopPlayingCard }

// countShopSlots walks an ante's shop slots, counting matches among slots
// both allowed by the clause's source constraint and belonging to the
// category this clause cares about.
func countShopSlots(cache *stream.Cache, c filter.Clause, ante int, want func(data.ShopCategory) bool) int {
	if !hasAnyShopSlot(c) {
		return 0
	}
	shop := cache.Shop(ante)
	count := 0
	for i := 0; i < shop.SlotCount(); i++ {
		if !c.MatchesShopSlot(i) {
			continue
		}
		slot, ok := shop.Slot(i)
		if !ok || !want(slot.Category) {
			continue
		}
		if matchesItem(slot.Item, c) {
			count++
		}
	}
	return count
}

func hasAnyShopSlot(c filter.Clause) bool {
	if c.Sources.ShopSlots == nil {
		return true
	}
	return c.Sources.ShopSlots.Len() > 0
}

// countPackSlots walks an ante's booster packs, inspecting only packs of
// packType (the pack-header cursor itself always advances once per pack
// regardless, via PackStream.Pack's eager materialization — see
// stream/packs.go). Contents only count when the pack's position is an
// allowed pack slot and, if requireMega is set, when the pack is Mega.
func countPackSlots(cache *stream.Cache, c filter.Clause, ante int, packType data.PackType) int {
	packs := cache.Packs(ante)
	count := 0
	for i := 0; i < packs.PackCount(); i++ {
		if !c.MatchesPackSlot(i) {
			continue
		}
		pack, ok := packs.Pack(i)
		if !ok || pack.Type != packType {
			continue
		}
		if c.Sources.RequireMega && pack.Size != data.PackMega {
			continue
		}
		for _, it := range pack.Cards {
			if matchesItem(it, c) {
				count++
			}
		}
	}
	return count
}

// countSoulJokers counts how many Soul/Black Hole cards this ante's
// Arcana and Spectral packs contain, resolving each one's granted joker
// via the soul joker stream in the same order the packs are walked — the
// soul joker stream's cursor advances exactly once per Soul card
// encountered, never per pack slot.
func countSoulJokers(cache *stream.Cache, c filter.Clause, ante int) int {
	packs := cache.Packs(ante)
	soulStream := cache.SoulJoker(ante)
	count := 0
	for i := 0; i < packs.PackCount(); i++ {
		if !c.MatchesPackSlot(i) {
			continue
		}
		pack, ok := packs.Pack(i)
		if !ok {
			continue
		}
		if c.Sources.RequireMega && pack.Size != data.PackMega {
			continue
		}
		for _, it := range pack.Cards {
			if !isSoulCard(it) {
				continue
			}
			joker := soulStream.Next()
			if matchesItem(joker, c) {
				count++
			}
		}
	}
	return count
}

func isSoulCard(it item.Item) bool {
	return it.IsSoul(data.SoulTarotType, data.BlackHoleSpectralType)
}

func countTag(cache *stream.Cache, c filter.Clause, ante int, slot int) int {
	if !c.Sources.Tags {
		return 0
	}
	tags := cache.Tags(ante)
	name, ok := tags.Tag(slot)
	if !ok {
		return 0
	}
	if c.Wildcard == filter.WildcardNone && int(name) != c.Value {
		return 0
	}
	return 1
}

func matchesVoucher(v data.VoucherName, c filter.Clause) bool {
	return c.Wildcard != filter.WildcardNone || int(v) == c.Value
}

func matchesBoss(b data.BossName, c filter.Clause) bool {
	return c.Wildcard != filter.WildcardNone || int(b) == c.Value
}
