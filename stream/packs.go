// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stream

import (
	"github.com/cardforge/seedsearch/data"
	"github.com/cardforge/seedsearch/item"
)

// BoosterPack is one materialized pack offer: its (type, size) header plus
// every card it offers, in draw order.
type BoosterPack struct {
	Type  data.PackType
	Size  data.PackSize
	Cards []item.Item
}

// PackStream yields an ante's booster packs in fixed order (spec.md §4.2
// "Booster pack stream"). The pack header (type, size) comes from one
// shared cursor; each pack's contents are drawn from the content cursor
// matching its type, so two Arcana packs in the same ante continue the
// same underlying Arcana-content sequence rather than restarting it.
type PackStream struct {
	seed string
	ante int

	headerCur *cursor

	arcanaCur    *cursor
	celestialCur *cursor
	spectralCur  *cursor
	standardCur  *cursor

	buffoonRarityCur  *cursor
	buffoonNameCur    *cursor
	buffoonEditionCur *cursor

	packs []BoosterPack
}

func newPackStream(seed string, ante int) *PackStream {
	return &PackStream{
		seed: seed, ante: ante,
		headerCur:    newCursor(seed, Descriptor{KindBoosterPack, ante, 0}),
		arcanaCur:    newCursor(seed, Descriptor{KindTarotArcanaPack, ante, 0}),
		celestialCur: newCursor(seed, Descriptor{KindPlanetCelestialPack, ante, 0}),
		spectralCur:  newCursor(seed, Descriptor{KindSpectralPack, ante, 0}),
		standardCur:  newCursor(seed, Descriptor{KindPlayingCardStandardPack, ante, 0}),
		// Pack-sourced jokers share the shop's rarity/name/edition Kinds
		// under a distinct Modifier (spec.md §3: "Modifier disambiguates
		// streams that share a (kind, ante)") rather than adding new Kind
		// values for what is, underneath, the same rarity/name/edition draw.
		buffoonRarityCur:  newCursor(seed, Descriptor{KindShopUncommonJoker, ante, 2}),
		buffoonNameCur:    newCursor(seed, Descriptor{KindShopRareJoker, ante, 2}),
		buffoonEditionCur: newCursor(seed, Descriptor{KindShopJokerEdition, ante, 2}),
	}
}

// PackCount returns how many packs this ante offers.
func (p *PackStream) PackCount() int {
	return data.PackCount(p.ante)
}

// Pack returns the i-th booster pack (0-indexed), materializing it and
// every pack before it if this is the first access.
func (p *PackStream) Pack(i int) (BoosterPack, bool) {
	n := p.PackCount()
	if i < 0 || i >= n {
		return BoosterPack{}, false
	}
	for len(p.packs) <= i {
		p.packs = append(p.packs, p.nextPack())
	}
	return p.packs[i], true
}

func (p *PackStream) nextPack() BoosterPack {
	kinds := data.PackDistribution(p.ante)
	weights := make([]float64, len(kinds))
	for i, k := range kinds {
		weights[i] = k.Weight
	}
	idx := p.headerCur.chooseWeighted(weights)
	kind := kinds[idx]
	offered := data.PackSlotCount(kind.Size)

	pack := BoosterPack{Type: kind.Type, Size: kind.Size, Cards: make([]item.Item, 0, offered)}
	for i := 0; i < offered; i++ {
		pack.Cards = append(pack.Cards, p.nextCard(kind.Type))
	}
	return pack
}

func (p *PackStream) nextCard(t data.PackType) item.Item {
	switch t {
	case data.PackArcana:
		return arcanaCard(p.arcanaCur)
	case data.PackCelestial:
		return celestialCard(p.celestialCur)
	case data.PackSpectral:
		return spectralCard(p.spectralCur)
	case data.PackBuffoon:
		return buffoonCard(p.buffoonRarityCur, p.buffoonNameCur, p.buffoonEditionCur)
	default: // data.PackStandard
		rank, suit, enhancement, seal := drawPlayingCard(p.standardCur)
		return item.NewPlayingCard(rank, suit, enhancement, seal, item.EditionNone)
	}
}
