// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package data

import "github.com/cardforge/seedsearch/item"

// JokerName enumerates every joker the data module knows about. Ordinal
// values are stable within a build (they're never persisted across
// versions) and double as the packed Item's base-type field for
// CategoryJoker items.
type JokerName uint8

const (
	JokerJoker JokerName = iota
	JokerGreedyJoker
	JokerLustyJoker
	JokerWrathfulJoker
	JokerGluttonousJoker
	JokerJollyJoker
	JokerZanyJoker
	JokerMadJoker
	JokerCrazyJoker
	JokerDrollJoker
	JokerSlyJoker
	JokerWilyJoker
	JokerCleverJoker
	JokerDeviousJoker
	JokerCraftyJoker
	JokerBlueprint
	JokerBrainstorm
	JokerMime
	JokerCreditCard
	JokerDNA
	JokerSocks
	// Legendary ("soul") jokers — these are the only jokers the soul
	// joker stream can produce, and never appear in shops directly
	// (spec.md §4.3's "for soul-joker clauses, shop_slots = ∅").
	JokerCanio
	JokerTriboulet
	JokerYorick
	JokerChicot
	JokerPerkeo
)

// LegendaryJokers is the fixed soul-joker pool the soul joker stream
// draws from (spec.md §4.2 "Soul joker stream").
var LegendaryJokers = []JokerName{JokerCanio, JokerTriboulet, JokerYorick, JokerChicot, JokerPerkeo}

var jokerNames = map[string]JokerName{
	"joker": JokerJoker, "greedyjoker": JokerGreedyJoker, "lustyjoker": JokerLustyJoker,
	"wrathfuljoker": JokerWrathfulJoker, "gluttonousjoker": JokerGluttonousJoker,
	"jollyjoker": JokerJollyJoker, "zanyjoker": JokerZanyJoker, "madjoker": JokerMadJoker,
	"crazyjoker": JokerCrazyJoker, "drolljoker": JokerDrollJoker, "slyjoker": JokerSlyJoker,
	"wilyjoker": JokerWilyJoker, "cleverjoker": JokerCleverJoker, "deviousjoker": JokerDeviousJoker,
	"craftyjoker": JokerCraftyJoker, "blueprint": JokerBlueprint, "brainstorm": JokerBrainstorm,
	"mime": JokerMime, "creditcard": JokerCreditCard, "dna": JokerDNA, "socks": JokerSocks,
	"canio": JokerCanio, "triboulet": JokerTriboulet, "yorick": JokerYorick,
	"chicot": JokerChicot, "perkeo": JokerPerkeo,
}

func ResolveJoker(name string) (JokerName, bool) {
	j, ok := jokerNames[name]
	return j, ok
}

func JokerNameCandidates() []string { return keysOf(jokerNames) }

// IsLegendary reports whether a joker name belongs to the fixed legendary
// soul-joker set.
func IsLegendary(j JokerName) bool {
	for _, l := range LegendaryJokers {
		if l == j {
			return true
		}
	}
	return false
}

// RarityOf returns the rarity bucket a joker belongs to. Rarity buckets
// below legendary are coarse groupings over the name table above; a real
// data module would carry per-joker rarity explicitly, but for the
// scenarios this engine filters on, a simple range split is sufficient and
// keeps the table in one place.
func RarityOf(j JokerName) item.Rarity {
	switch {
	case IsLegendary(j):
		return item.RarityLegendary
	case j >= JokerSlyJoker && j <= JokerCraftyJoker:
		return item.RarityRare
	case j >= JokerJollyJoker && j <= JokerDrollJoker:
		return item.RarityUncommon
	default:
		return item.RarityCommon
	}
}

// JokerRarityWeights returns the (common, uncommon, rare, legendary)
// selection weights used when a shop or buffoon-pack slot first decides
// a joker's rarity, before the specific name is drawn. Matches the data
// module interface in spec.md §6.
func JokerRarityWeights() (common, uncommon, rare, legendary float64) {
	return 70, 20, 9, 1
}
