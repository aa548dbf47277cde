// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package scalar implements spec.md §4.5: the per-seed evaluator that
// re-verifies every MUST/MUST_NOT clause (vectorizable or not) against
// full stream cursors, counts SHOULD occurrences, and computes score.
package scalar

import (
	"github.com/cardforge/seedsearch/filter"
	"github.com/cardforge/seedsearch/item"
)

// matchesValue reports whether it satisfies a clause's value/wildcard
// selector. Category-specific callers only invoke this once they've
// already confirmed it belongs to the right category.
func matchesValue(it item.Item, c filter.Clause) bool {
	switch c.Wildcard {
	case filter.WildcardNone:
		return int(it.BaseType()) == c.Value
	case filter.WildcardAny, filter.WildcardAnyJoker:
		return true
	case filter.WildcardAnyCommon:
		return it.Rarity() == item.RarityCommon
	case filter.WildcardAnyUncommon:
		return it.Rarity() == item.RarityUncommon
	case filter.WildcardAnyRare:
		return it.Rarity() == item.RarityRare
	case filter.WildcardAnyLegendary:
		return it.Rarity() == item.RarityLegendary
	default:
		return false
	}
}

// matchesRefinements checks the optional edition/sticker/rank/suit/seal/
// enhancement narrowing fields a clause may carry. Stickers match when
// every flag the clause names is present on the item (a subset check,
// not equality — a clause never requires the absence of an unlisted
// sticker).
func matchesRefinements(it item.Item, c filter.Clause) bool {
	if c.HasEdition && it.Edition() != c.Edition {
		return false
	}
	if c.Stickers != 0 && it.Stickers()&c.Stickers != c.Stickers {
		return false
	}
	if c.HasRank && it.Rank() != c.Rank {
		return false
	}
	if c.HasSuit && it.Suit() != c.Suit {
		return false
	}
	if c.HasSeal && it.Seal() != c.Seal {
		return false
	}
	if c.HasEnhancement && it.Enhancement() != c.Enhancement {
		return false
	}
	return true
}

// matchesItem combines matchesValue and matchesRefinements — the full
// predicate a single Item must satisfy for a clause.
func matchesItem(it item.Item, c filter.Clause) bool {
	return matchesValue(it, c) && matchesRefinements(it, c)
}
