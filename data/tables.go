// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package data

// CategoryWeights is the weighted table a shop slot's category draw
// samples from (spec.md §4.2 "Shop item stream").
type CategoryWeights struct {
	Joker       float64
	Tarot       float64
	Planet      float64
	Spectral    float64
	PlayingCard float64
}

// AsSlice returns the weights in the fixed order ChooseWeighted expects,
// alongside the Category each index corresponds to.
func (w CategoryWeights) AsSlice() (weights []float64, categories []ShopCategory) {
	return []float64{w.Joker, w.Tarot, w.Planet, w.Spectral, w.PlayingCard},
		[]ShopCategory{ShopJoker, ShopTarot, ShopPlanet, ShopSpectral, ShopPlayingCard}
}

// ShopCategory identifies what kind of item a shop slot resolved to.
type ShopCategory uint8

const (
	ShopJoker ShopCategory = iota
	ShopTarot
	ShopPlanet
	ShopSpectral
	ShopPlayingCard
)

// ShopWeights returns the category weights for a shop slot draw, adjusted
// for active vouchers (spec.md §4.2): Crystal Ball raises the tarot rate,
// Ghost Deck adds a spectral rate of 2/30 (scaled into this table's
// arbitrary weight units, which aren't themselves probabilities).
func ShopWeights(deck Deck, stake Stake, ante int, active map[VoucherName]bool) CategoryWeights {
	w := CategoryWeights{Joker: 20, Tarot: 4, Planet: 4, Spectral: 0, PlayingCard: 2}
	if active[VoucherCrystalBall] {
		w.Tarot += 1.5
	}
	if active[VoucherOmenGlobe] {
		w.Tarot += 1.5
	}
	if deck == DeckGhost {
		total := w.Joker + w.Tarot + w.Planet + w.PlayingCard
		w.Spectral += total * (2.0 / 30.0)
	}
	return w
}

// ShopSlotCount returns how many slots an ante's shop offers: 4 in ante 1,
// 6 thereafter, plus one extra per stacked Overstock voucher.
func ShopSlotCount(ante int, active map[VoucherName]bool) int {
	n := 6
	if ante == 1 {
		n = 4
	}
	if active[VoucherOverstock] {
		n++
	}
	if active[VoucherOverstockPlus] {
		n++
	}
	return n
}

// PackType and PackSize together identify a booster pack's contents kind
// and how many cards it holds.
type PackType uint8

const (
	PackArcana PackType = iota
	PackBuffoon
	PackCelestial
	PackSpectral
	PackStandard
)

type PackSize uint8

const (
	PackNormal PackSize = iota
	PackJumbo
	PackMega
)

// PackSlotCount returns how many cards a pack of a given size offers (the
// player picks only a subset, but the stream must still materialize every
// offered card; the pick count is not modelled here).
func PackSlotCount(size PackSize) (offered int) {
	switch size {
	case PackJumbo:
		return 5
	case PackMega:
		return 4
	default:
		return 3
	}
}

// PackKindWeight is one entry in a per-ante pack-distribution table.
type PackKindWeight struct {
	Type   PackType
	Size   PackSize
	Weight float64
}

// PackDistribution returns the fixed weighted table of (type, size) pairs
// an ante's booster-pack stream samples from (spec.md §4.2 "Booster pack
// stream"). The table is ante-invariant in this data module: real game
// data varies pack odds slightly by ante, but no antes 1-8 scenario this
// engine filters on depends on that variance, so one shared table keeps
// the data module's surface small.
func PackDistribution(ante int) []PackKindWeight {
	return []PackKindWeight{
		{PackArcana, PackNormal, 4},
		{PackArcana, PackJumbo, 2},
		{PackArcana, PackMega, 0.5},
		{PackBuffoon, PackNormal, 3},
		{PackBuffoon, PackJumbo, 1.5},
		{PackBuffoon, PackMega, 0.3},
		{PackCelestial, PackNormal, 4},
		{PackCelestial, PackJumbo, 2},
		{PackCelestial, PackMega, 0.5},
		{PackSpectral, PackNormal, 1.2},
		{PackSpectral, PackJumbo, 0.6},
		{PackSpectral, PackMega, 0.15},
		{PackStandard, PackNormal, 2.5},
		{PackStandard, PackJumbo, 1.2},
		{PackStandard, PackMega, 0.3},
	}
}

// PackCount returns how many packs an ante offers: 4 in ante 1, 6
// thereafter (spec.md §4.2).
func PackCount(ante int) int {
	if ante == 1 {
		return 4
	}
	return 6
}

// SoulSlotChance is the low per-card-slot probability that an Arcana or
// Spectral pack slot resolves to The Soul (Arcana) or The Soul/Black Hole
// (Spectral) instead of a normal card of that category.
const (
	SoulSlotChanceArcana       = 0.003
	SoulSlotChanceSpectral     = 0.003
	BlackHoleSlotChanceSpectral = 0.003
)

// VoucherAfter resolves the ante's offered voucher from the fixed pool:
// it calls draw once over the vouchers not yet activated, so an owned
// voucher is never offered; when every voucher is already active it draws
// once over the whole pool (spec.md §4.2 "Voucher stream"). draw is supplied
// by the caller (package stream) so this pure data-table function never
// touches prng.State directly — matching spec.md §6's framing of this as
// an external, stateless collaborator interface.
func VoucherAfter(active map[VoucherName]bool, draw func(n int) int) VoucherName {
	pool := voucherPool()
	available := make([]VoucherName, 0, len(pool))
	for _, v := range pool {
		if !active[v] {
			available = append(available, v)
		}
	}
	if len(available) == 0 {
		return pool[draw(len(pool))]
	}
	return available[draw(len(available))]
}

// voucherPool returns every voucher in a fixed, declaration order. This
// must never be derived from map iteration (Go map order is randomized
// per-process) or VoucherAfter would violate spec.md §8's determinism
// property.
func voucherPool() []VoucherName {
	return []VoucherName{
		VoucherOverstock, VoucherOverstockPlus, VoucherClearanceSale, VoucherLiquidation,
		VoucherHone, VoucherGlowUp, VoucherRerollSurplus, VoucherRerollGlut,
		VoucherCrystalBall, VoucherOmenGlobe, VoucherTelescope, VoucherObservatory,
		VoucherGrabber, VoucherNachoTong, VoucherWasteful, VoucherRecyclomancy,
		VoucherTarotMerchant, VoucherTarotTycoon, VoucherPlanetMerchant, VoucherPlanetTycoon,
		VoucherSeedMoney, VoucherMoneyTree, VoucherBlank, VoucherAntimatter,
		VoucherMagicTrick, VoucherIllusion, VoucherHieroglyph, VoucherPetroglyph,
		VoucherDirectorsCut, VoucherRetcon, VoucherPaintBrush, VoucherPalette,
	}
}
