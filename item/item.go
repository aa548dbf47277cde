// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package item implements the packed 32-bit Item representation from
// spec.md §3 ("Item (packed)"). An Item is a value type: it is copied, not
// pointed to, and every accessor is a pure bit extraction.
package item

// Item is a packed 32-bit item descriptor. Bit layout (LSB first), per
// spec.md §3:
//
//	bits 0-7   base type index within category
//	bits 8-11  rarity
//	bits 12-15 category
//	bits 16-18 edition
//	bits 19-21 enhancement (playing cards)
//	bits 22-24 seal (playing cards)
//	bits 25-27 sticker flags (eternal, perishable, rental)
//	bits 28-31 rank/suit (playing cards)
type Item uint32

const (
	typeShift   = 0
	typeMask    = 0xFF
	raritySh    = 8
	rarityMask  = 0xF
	categorySh  = 12
	categoryMsk = 0xF
	editionSh   = 16
	editionMsk  = 0x7
	enhanceSh   = 19
	enhanceMsk  = 0x7
	sealSh      = 22
	sealMsk     = 0x7
	stickerSh   = 25
	stickerMsk  = 0x7
	rankSuitSh  = 28
	rankSuitMsk = 0xF
)

// Category identifies which item family an Item belongs to.
type Category uint8

const (
	CategoryInvalid Category = iota
	CategoryJoker
	CategoryTarot
	CategoryPlanet
	CategorySpectral
	CategoryPlayingCard
)

// Rarity is only meaningful for Joker-category items.
type Rarity uint8

const (
	RarityNone Rarity = iota
	RarityCommon
	RarityUncommon
	RarityRare
	RarityLegendary
)

// Edition is the visual/functional modifier on an item.
type Edition uint8

const (
	EditionNone Edition = iota
	EditionFoil
	EditionHolographic
	EditionPolychrome
	EditionNegative
)

// Enhancement applies to playing cards only.
type Enhancement uint8

const (
	EnhancementNone Enhancement = iota
	EnhancementBonus
	EnhancementMult
	EnhancementWild
	EnhancementGlass
	EnhancementSteel
	EnhancementStone
	EnhancementGold
	EnhancementLucky
)

// Seal applies to playing cards only.
type Seal uint8

const (
	SealNone Seal = iota
	SealGold
	SealRed
	SealBlue
	SealPurple
)

// StickerFlags is a bitmask of persistent joker modifiers.
type StickerFlags uint8

const (
	StickerEternal StickerFlags = 1 << iota
	StickerPerishable
	StickerRental
)

// RankSuit is the 4-bit rank/suit nibble of a playing card. It holds the
// Suit alone (see PackRankSuit); the full (rank, suit) identity lives in
// the base-type field via CardIdentity.
type RankSuit uint8

// New constructs an Item from its component fields. Callers needing only
// a subset of fields (e.g. a bare joker) pass the zero value for the rest.
func New(category Category, baseType uint8, rarity Rarity, edition Edition, enhancement Enhancement, seal Seal, stickers StickerFlags, rankSuit RankSuit) Item {
	return Item(
		(uint32(baseType)&typeMask)<<typeShift |
			(uint32(rarity)&rarityMask)<<raritySh |
			(uint32(category)&categoryMsk)<<categorySh |
			(uint32(edition)&editionMsk)<<editionSh |
			(uint32(enhancement)&enhanceMsk)<<enhanceSh |
			(uint32(seal)&sealMsk)<<sealSh |
			(uint32(stickers)&stickerMsk)<<stickerSh |
			(uint32(rankSuit)&rankSuitMsk)<<rankSuitSh)
}

// NewJoker is a convenience constructor for the common case: a joker has
// no enhancement/seal/rank-suit fields.
func NewJoker(baseType uint8, rarity Rarity, edition Edition, stickers StickerFlags) Item {
	return New(CategoryJoker, baseType, rarity, edition, EnhancementNone, SealNone, stickers, 0)
}

// NewCard is a convenience constructor for tarot/planet/spectral cards,
// which carry no rarity beyond RarityNone.
func NewCard(category Category, baseType uint8, edition Edition) Item {
	return New(category, baseType, RarityNone, edition, EnhancementNone, SealNone, 0, 0)
}

// NewPlayingCard is a convenience constructor for standard-deck cards.
// The full (rank, suit) identity is carried in the 8-bit base-type field
// (via CardIdentity); the 4-bit rank/suit nibble additionally stores the
// suit alone for O(1) suit-only checks (see PackRankSuit).
func NewPlayingCard(rank Rank, suit Suit, enhancement Enhancement, seal Seal, edition Edition) Item {
	return New(CategoryPlayingCard, CardIdentity(rank, suit), RarityNone, edition, enhancement, seal, 0, PackRankSuit(suit))
}

// Rank returns the playing card's rank, decoded from the base-type field.
func (it Item) Rank() Rank {
	r, _ := UnpackCardIdentity(it.BaseType())
	return r
}

// Suit returns the playing card's suit, decoded from the base-type field.
func (it Item) Suit() Suit {
	_, s := UnpackCardIdentity(it.BaseType())
	return s
}

func (it Item) BaseType() uint8       { return uint8(it>>typeShift) & typeMask }
func (it Item) Rarity() Rarity        { return Rarity(uint8(it>>raritySh) & rarityMask) }
func (it Item) Category() Category    { return Category(uint8(it>>categorySh) & categoryMsk) }
func (it Item) Edition() Edition      { return Edition(uint8(it>>editionSh) & editionMsk) }
func (it Item) Enhancement() Enhancement { return Enhancement(uint8(it>>enhanceSh) & enhanceMsk) }
func (it Item) Seal() Seal            { return Seal(uint8(it>>sealSh) & sealMsk) }
func (it Item) Stickers() StickerFlags { return StickerFlags(uint8(it>>stickerSh) & stickerMsk) }
func (it Item) RankSuit() RankSuit    { return RankSuit(uint8(it>>rankSuitSh) & rankSuitMsk) }

// HasSticker reports whether flag is set in the item's sticker bitmask.
func (it Item) HasSticker(flag StickerFlags) bool {
	return it.Stickers()&flag != 0
}

// IsSoul reports whether this item's base type marks it as a Soul-bearing
// card: only The Soul tarot and The Black Hole spectral carry this marker
// (spec.md §3 invariant). baseType values for those two cards are supplied
// by the data module (data.SoulTarotType, data.BlackHoleSpectralType) —
// this method just compares against whatever the caller passes in, keeping
// item free of a dependency on data.
func (it Item) IsSoul(soulTarotType, blackHoleType uint8) bool {
	switch it.Category() {
	case CategoryTarot:
		return it.BaseType() == soulTarotType
	case CategorySpectral:
		return it.BaseType() == blackHoleType
	default:
		return false
	}
}
