// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package filter defines the compiled, enum-typed query the rest of the
// engine evaluates (spec.md §3 "Filter", §9's tagged-variant redesign).
// Nothing in this package touches JSON or strings — that is package
// compile's job, the only component permitted to resolve text.
package filter

import (
	"github.com/cardforge/seedsearch/data"
	"github.com/cardforge/seedsearch/item"
	"github.com/cardforge/seedsearch/stream"
	"github.com/cardforge/seedsearch/util/set"
)

// Category is the clause discriminant. The source used runtime
// string-typed property bags for this; here it's a single tag controlling
// which of Clause's refinement fields are meaningful, so the evaluator
// dispatches once per clause instead of re-parsing a type string per seed.
type Category uint8

const (
	CategoryJoker Category = iota
	CategorySoulJoker
	CategoryTarot
	CategoryPlanet
	CategorySpectral
	CategoryPlayingCard
	CategorySmallBlindTag
	CategoryBigBlindTag
	CategoryVoucher
	CategoryBoss
)

// Wildcard lets a clause match a whole rarity bucket (or any item of its
// category) instead of one specific enum value.
type Wildcard uint8

const (
	WildcardNone Wildcard = iota
	WildcardAny
	WildcardAnyCommon
	WildcardAnyUncommon
	WildcardAnyRare
	WildcardAnyLegendary
	WildcardAnyJoker
)

// Sources narrows where a clause's occurrences are allowed to come from
// (spec.md §3 "source constraints"). Nil slot sets mean "every slot",
// matching the compiler's post-default-application output: the compiler
// is the only place that materializes the {0..5} shop/pack slot defaults
// into explicit sets.
type Sources struct {
	ShopSlots   set.Set[int]
	PackSlots   set.Set[int]
	Tags        bool
	RequireMega bool
}

// Clause is one MUST/SHOULD/MUST_NOT predicate. Only one of (Value,
// Wildcard) is meaningful at a time: Wildcard == WildcardNone means
// Value names a concrete enum value within Category's domain
// (a JokerName, TarotName, VoucherName, ...); any other Wildcard value
// means Value is ignored.
type Clause struct {
	Category Category
	Value    int
	Wildcard Wildcard

	Antes set.Set[int]

	Sources Sources

	HasEdition     bool
	Edition        item.Edition
	Stickers       item.StickerFlags
	HasRank        bool
	Rank           item.Rank
	HasSuit        bool
	Suit           item.Suit
	HasSeal        bool
	Seal           item.Seal
	HasEnhancement bool
	Enhancement    item.Enhancement

	Score int
	// Min is the minimum occurrence count for this clause to be
	// considered satisfied. Zero means "any occurrence at all" (the
	// common case); a MUST clause with Min > 1 (spec.md §8 scenario 4)
	// requires that many occurrences before the clause itself passes.
	Min int

	// Vectorizable is set once at compile time (spec.md §4.3 step 4) and
	// never recomputed; the vector evaluator trusts it without
	// re-deriving it per lane-group.
	Vectorizable bool
}

// PlanEntry is one (stream kind, ante) pair the compiler determined must
// be cached eagerly (spec.md §4.3 step 5).
type PlanEntry struct {
	Kind stream.Kind
	Ante int
}

// Cutoff selects fixed vs. auto-cutoff scoring mode (spec.md §4.5
// "Auto-cutoff mode").
type Cutoff struct {
	Auto  bool
	Fixed int
}

// Filter is the fully compiled query: three ordered clause vectors plus
// the deck/stake/cutoff the search runs under and the eager stream-cache
// plan. A Filter is immutable after compile (spec.md §1 non-goal: "online
// updates to the rule set mid-batch") and is shared read-only across
// every worker lane.
type Filter struct {
	Must    []Clause
	Should  []Clause
	MustNot []Clause

	Deck   data.Deck
	Stake  data.Stake
	Cutoff Cutoff

	Plan []PlanEntry
}

// AllClauses returns Must, Should, and MustNot concatenated, in that
// order — useful for passes that don't care which vector a clause came
// from (e.g. plan computation, vectorizability classification).
func (f *Filter) AllClauses() []Clause {
	all := make([]Clause, 0, len(f.Must)+len(f.Should)+len(f.MustNot))
	all = append(all, f.Must...)
	all = append(all, f.Should...)
	all = append(all, f.MustNot...)
	return all
}

// MatchesAnte reports whether ante is in the clause's ante set, or true
// if the set is nil (a defaulted/unrestricted clause should never reach
// this point post-compile, but nil-is-unrestricted keeps this method
// total regardless).
func (c *Clause) MatchesAnte(ante int) bool {
	if c.Antes == nil {
		return true
	}
	return c.Antes.Contains(ante)
}

// MatchesShopSlot reports whether slot is an allowed shop slot for this
// clause (nil set means unrestricted).
func (c *Clause) MatchesShopSlot(slot int) bool {
	if c.Sources.ShopSlots == nil {
		return true
	}
	return c.Sources.ShopSlots.Contains(slot)
}

// MatchesPackSlot reports whether slot is an allowed pack slot for this
// clause.
func (c *Clause) MatchesPackSlot(slot int) bool {
	if c.Sources.PackSlots == nil {
		return true
	}
	return c.Sources.PackSlots.Contains(slot)
}

// MinRequired returns the occurrence count this clause needs to be
// satisfied: Min if set, otherwise 1.
func (c *Clause) MinRequired() int {
	if c.Min > 1 {
		return c.Min
	}
	return 1
}
