// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package data is the constant-data collaborator spec.md §1 and §6
// describe as "the game-specific tables that map rarity weights, pack
// contents, and item probabilities to enum values" and the "Data module
// interface". Everything here is static: no PRNG state, no I/O. The rule
// compiler (package compile) is the only caller that resolves strings
// against these tables; the stream and scalar/vector evaluator packages
// consume only the resulting enum values and weight tables.
package data

import "sort"

// Deck and Stake select the ruleset streams draw under. Only a handful of
// deck/stake modifiers affect the streams this engine simulates (the rest
// affect gameplay outside the filter's concern, per spec.md's "first ~8
// antes" scope).
type Deck uint8

const (
	DeckRed Deck = iota
	DeckBlue
	DeckYellow
	DeckGreen
	DeckBlack
	DeckMagic
	DeckNebula
	DeckGhost
	DeckAbandoned
	DeckCheckered
	DeckZodiac
	DeckPainted
	DeckAnaglyph
	DeckPlasma
	DeckErratic
)

var deckNames = map[string]Deck{
	"red": DeckRed, "blue": DeckBlue, "yellow": DeckYellow, "green": DeckGreen,
	"black": DeckBlack, "magic": DeckMagic, "nebula": DeckNebula, "ghost": DeckGhost,
	"abandoned": DeckAbandoned, "checkered": DeckCheckered, "zodiac": DeckZodiac,
	"painted": DeckPainted, "anaglyph": DeckAnaglyph, "plasma": DeckPlasma, "erratic": DeckErratic,
}

// ResolveDeck resolves a deck name to its enum, per compile.md's "resolve
// every string to an enum exactly once" rule.
func ResolveDeck(name string) (Deck, bool) {
	d, ok := deckNames[name]
	return d, ok
}

// DeckNames lists the known deck names, for compile error candidate lists.
func DeckNames() []string { return keysOf(deckNames) }

type Stake uint8

const (
	StakeWhite Stake = iota
	StakeRed
	StakeGreen
	StakeBlack
	StakeBlue
	StakePurple
	StakeOrange
	StakeGold
)

var stakeNames = map[string]Stake{
	"white": StakeWhite, "red": StakeRed, "green": StakeGreen, "black": StakeBlack,
	"blue": StakeBlue, "purple": StakePurple, "orange": StakeOrange, "gold": StakeGold,
}

func ResolveStake(name string) (Stake, bool) {
	s, ok := stakeNames[name]
	return s, ok
}

func StakeNames() []string { return keysOf(stakeNames) }

// keysOf returns a map's keys in sorted order so compile-error candidate
// lists (the only consumer) are stable across runs despite Go's
// randomized map iteration.
func keysOf[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
