// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package compile is the only component in this engine that touches
// text: it parses filter JSON under spec.md §6's strict schema, resolves
// every string to an enum exactly once, applies defaults, classifies
// vectorizability, and plans eager stream caching. Everything downstream
// sees only filter.Filter and its enum-typed clauses.
package compile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/cardforge/seedsearch/data"
	"github.com/cardforge/seedsearch/filter"
	"github.com/cardforge/seedsearch/item"
	"github.com/cardforge/seedsearch/stream"
	"github.com/cardforge/seedsearch/util/set"
)

// Error is returned for every schema/enum failure (spec.md §7's
// ConfigInvalid kind). Error prints the offending clause path and the
// acceptable candidates, per spec.md §7's "user-visible failures" rule.
type Error struct {
	Path       string
	Message    string
	Candidates []string
}

func (e *Error) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s (candidates: %v)", e.Path, e.Message, e.Candidates)
}

func fail(path, msg string, candidates []string) error {
	return &Error{Path: path, Message: msg, Candidates: candidates}
}

type rawFilter struct {
	Name        *string          `json:"name,omitempty"`
	Author      *string          `json:"author,omitempty"`
	Description *string          `json:"description,omitempty"`
	Deck        *string          `json:"deck,omitempty"`
	Stake       *string          `json:"stake,omitempty"`
	Filter      *rawFilterInner  `json:"filter,omitempty"`
	Must        []rawFilterItem  `json:"must,omitempty"`
	Should      []rawFilterItem  `json:"should,omitempty"`
	MustNot     []rawFilterItem  `json:"mustNot,omitempty"`
}

type rawFilterInner struct {
	Deck    *string `json:"deck,omitempty"`
	Stake   *string `json:"stake,omitempty"`
	MaxAnte *int    `json:"maxAnte,omitempty"`
}

type rawSources struct {
	ShopSlots   []int `json:"shopSlots,omitempty"`
	PackSlots   []int `json:"packSlots,omitempty"`
	Tags        *bool `json:"tags,omitempty"`
	RequireMega *bool `json:"requireMega,omitempty"`
}

type rawFilterItem struct {
	Type        string      `json:"type"`
	Value       *string     `json:"value,omitempty"`
	Antes       []int       `json:"antes,omitempty"`
	Score       *int        `json:"score,omitempty"`
	Min         *int        `json:"min,omitempty"`
	Edition     *string     `json:"edition,omitempty"`
	Stickers    []string    `json:"stickers,omitempty"`
	Suit        *string     `json:"suit,omitempty"`
	Rank        *string     `json:"rank,omitempty"`
	Seal        *string     `json:"seal,omitempty"`
	Enhancement *string     `json:"enhancement,omitempty"`
	Sources     *rawSources `json:"sources,omitempty"`
}

// defaultAntes is spec.md §4.3's default ante set: {1..8}.
func defaultAntes() set.Set[int] {
	s := set.NewSet[int](8)
	for a := 1; a <= 8; a++ {
		s.Add(a)
	}
	return s
}

func slotSet(values []int, fallback func() set.Set[int]) set.Set[int] {
	if values == nil {
		return fallback()
	}
	s := set.NewSet[int](len(values))
	s.Add(values...)
	return s
}

func defaultShopSlots() set.Set[int] { return slotRange(0, 5) }
func defaultPackSlots() set.Set[int] { return slotRange(0, 5) }

func slotRange(lo, hi int) set.Set[int] {
	s := set.NewSet[int](hi - lo + 1)
	for i := lo; i <= hi; i++ {
		s.Add(i)
	}
	return s
}

// Compile parses and validates raw filter JSON into an immutable
// filter.Filter, per spec.md §4.3.
func Compile(raw []byte) (*filter.Filter, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var rf rawFilter
	if err := dec.Decode(&rf); err != nil {
		return nil, fail("$", fmt.Sprintf("invalid filter JSON: %v", err), nil)
	}

	deck, stake, err := resolveDeckStake(&rf)
	if err != nil {
		return nil, err
	}

	f := &filter.Filter{Deck: deck, Stake: stake}

	if f.Must, err = compileItems(rf.Must, "must"); err != nil {
		return nil, err
	}
	if f.Should, err = compileItems(rf.Should, "should"); err != nil {
		return nil, err
	}
	if f.MustNot, err = compileItems(rf.MustNot, "mustNot"); err != nil {
		return nil, err
	}

	// MUST/SHOULD copy law (spec.md §4.3 step 6, §8 "MUST/SHOULD copy law"):
	// if SHOULD is empty and MUST isn't, every satisfied MUST also
	// contributes to score so matching seeds get a score floor of 1.
	if len(f.Should) == 0 && len(f.Must) > 0 {
		f.Should = append([]filter.Clause(nil), f.Must...)
		for i := range f.Should {
			if f.Should[i].Score == 0 {
				f.Should[i].Score = 1
			}
		}
	}

	f.Cutoff = filter.Cutoff{Auto: false, Fixed: 0}
	f.Plan = planStreams(f)

	return f, nil
}

func resolveDeckStake(rf *rawFilter) (data.Deck, data.Stake, error) {
	deckName, stakeName := rf.Deck, rf.Stake
	if rf.Filter != nil {
		if rf.Filter.Deck != nil {
			deckName = rf.Filter.Deck
		}
		if rf.Filter.Stake != nil {
			stakeName = rf.Filter.Stake
		}
	}

	deck := data.DeckRed
	if deckName != nil {
		d, ok := data.ResolveDeck(*deckName)
		if !ok {
			return 0, 0, fail("$.deck", fmt.Sprintf("unknown deck %q", *deckName), data.DeckNames())
		}
		deck = d
	}

	stake := data.StakeWhite
	if stakeName != nil {
		s, ok := data.ResolveStake(*stakeName)
		if !ok {
			return 0, 0, fail("$.stake", fmt.Sprintf("unknown stake %q", *stakeName), data.StakeNames())
		}
		stake = s
	}
	return deck, stake, nil
}

func compileItems(items []rawFilterItem, section string) ([]filter.Clause, error) {
	out := make([]filter.Clause, 0, len(items))
	for i, raw := range items {
		path := fmt.Sprintf("$.%s[%d]", section, i)
		c, err := compileItem(raw, path)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

var categoryNames = map[string]filter.Category{
	"joker":          filter.CategoryJoker,
	"souljoker":      filter.CategorySoulJoker,
	"tarotcard":      filter.CategoryTarot,
	"planetcard":     filter.CategoryPlanet,
	"spectralcard":   filter.CategorySpectral,
	"playingcard":    filter.CategoryPlayingCard,
	"smallblindtag":  filter.CategorySmallBlindTag,
	"bigblindtag":    filter.CategoryBigBlindTag,
	"voucher":        filter.CategoryVoucher,
	"boss":           filter.CategoryBoss,
}

func categoryCandidates() []string { return sortedKeys(categoryNames) }

var wildcardNames = map[string]filter.Wildcard{
	"any":          filter.WildcardAny,
	"anycommon":    filter.WildcardAnyCommon,
	"anyuncommon":  filter.WildcardAnyUncommon,
	"anyrare":      filter.WildcardAnyRare,
	"anylegendary": filter.WildcardAnyLegendary,
	"anyjoker":     filter.WildcardAnyJoker,
}

func compileItem(raw rawFilterItem, path string) (filter.Clause, error) {
	cat, ok := categoryNames[raw.Type]
	if !ok {
		return filter.Clause{}, fail(path+".type", fmt.Sprintf("unknown item type %q", raw.Type), categoryCandidates())
	}

	c := filter.Clause{Category: cat}

	if raw.Antes == nil {
		c.Antes = defaultAntes()
	} else {
		c.Antes = set.NewSet[int](len(raw.Antes))
		c.Antes.Add(raw.Antes...)
	}

	c.Sources.ShopSlots = slotSet(nilIfEmptySlice(func() []int {
		if raw.Sources == nil {
			return nil
		}
		return raw.Sources.ShopSlots
	}()), defaultShopSlots)
	c.Sources.PackSlots = slotSet(nilIfEmptySlice(func() []int {
		if raw.Sources == nil {
			return nil
		}
		return raw.Sources.PackSlots
	}()), defaultPackSlots)
	c.Sources.Tags = true
	if raw.Sources != nil && raw.Sources.Tags != nil {
		c.Sources.Tags = *raw.Sources.Tags
	}
	if raw.Sources != nil && raw.Sources.RequireMega != nil {
		c.Sources.RequireMega = *raw.Sources.RequireMega
	}

	// Legendary jokers never appear in shops (spec.md §4.3 step 3): force
	// an explicit empty set, not the unrestricted default.
	if cat == filter.CategorySoulJoker {
		c.Sources.ShopSlots = set.Set[int]{}
	}

	if raw.Value != nil {
		if err := resolveValue(&c, path, cat, *raw.Value); err != nil {
			return filter.Clause{}, err
		}
	} else {
		c.Wildcard = filter.WildcardAny
	}

	if raw.Score != nil {
		c.Score = *raw.Score
	}
	if raw.Min != nil {
		c.Min = *raw.Min
	}

	if raw.Edition != nil {
		e, ok := editionNames[*raw.Edition]
		if !ok {
			return filter.Clause{}, fail(path+".edition", fmt.Sprintf("unknown edition %q", *raw.Edition), sortedKeys(editionNames))
		}
		c.HasEdition, c.Edition = true, e
	}
	for _, s := range raw.Stickers {
		flag, ok := stickerNames[s]
		if !ok {
			return filter.Clause{}, fail(path+".stickers", fmt.Sprintf("unknown sticker %q", s), sortedKeys(stickerNames))
		}
		c.Stickers |= flag
	}
	if raw.Rank != nil {
		r, ok := rankNames[*raw.Rank]
		if !ok {
			return filter.Clause{}, fail(path+".rank", fmt.Sprintf("unknown rank %q", *raw.Rank), sortedKeys(rankNames))
		}
		c.HasRank, c.Rank = true, r
	}
	if raw.Suit != nil {
		s, ok := suitNames[*raw.Suit]
		if !ok {
			return filter.Clause{}, fail(path+".suit", fmt.Sprintf("unknown suit %q", *raw.Suit), sortedKeys(suitNames))
		}
		c.HasSuit, c.Suit = true, s
	}
	if raw.Seal != nil {
		s, ok := sealNames[*raw.Seal]
		if !ok {
			return filter.Clause{}, fail(path+".seal", fmt.Sprintf("unknown seal %q", *raw.Seal), sortedKeys(sealNames))
		}
		c.HasSeal, c.Seal = true, s
	}
	if raw.Enhancement != nil {
		e, ok := enhancementNames[*raw.Enhancement]
		if !ok {
			return filter.Clause{}, fail(path+".enhancement", fmt.Sprintf("unknown enhancement %q", *raw.Enhancement), sortedKeys(enhancementNames))
		}
		c.HasEnhancement, c.Enhancement = true, e
	}

	c.Vectorizable = classifyVectorizable(c)
	return c, nil
}

func nilIfEmptySlice(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	return s
}

// resolveValue resolves a clause's value string, checking wildcards
// first, then the category's enum domain (spec.md §4.3 step 2: "resolve
// every string to an enum exactly once").
func resolveValue(c *filter.Clause, path string, cat filter.Category, value string) error {
	if w, ok := wildcardNames[value]; ok {
		c.Wildcard = w
		return nil
	}

	switch cat {
	case filter.CategoryJoker, filter.CategorySoulJoker:
		j, ok := data.ResolveJoker(value)
		if !ok {
			return fail(path+".value", fmt.Sprintf("unknown joker %q", value), data.JokerNameCandidates())
		}
		if cat == filter.CategorySoulJoker && !data.IsLegendary(j) {
			return fail(path+".value", fmt.Sprintf("%q is not a legendary joker", value), legendaryCandidates())
		}
		c.Value = int(j)
	case filter.CategoryTarot:
		t, ok := data.ResolveTarot(value)
		if !ok {
			return fail(path+".value", fmt.Sprintf("unknown tarot %q", value), data.TarotNameCandidates())
		}
		c.Value = int(t)
	case filter.CategoryPlanet:
		p, ok := data.ResolvePlanet(value)
		if !ok {
			return fail(path+".value", fmt.Sprintf("unknown planet %q", value), data.PlanetNameCandidates())
		}
		c.Value = int(p)
	case filter.CategorySpectral:
		s, ok := data.ResolveSpectral(value)
		if !ok {
			return fail(path+".value", fmt.Sprintf("unknown spectral %q", value), data.SpectralNameCandidates())
		}
		c.Value = int(s)
	case filter.CategoryVoucher:
		v, ok := data.ResolveVoucher(value)
		if !ok {
			return fail(path+".value", fmt.Sprintf("unknown voucher %q", value), data.VoucherNameCandidates())
		}
		c.Value = int(v)
	case filter.CategoryBoss:
		b, ok := data.ResolveBoss(value)
		if !ok {
			return fail(path+".value", fmt.Sprintf("unknown boss %q", value), data.BossNameCandidates())
		}
		c.Value = int(b)
	case filter.CategorySmallBlindTag, filter.CategoryBigBlindTag:
		t, ok := data.ResolveTag(value)
		if !ok {
			return fail(path+".value", fmt.Sprintf("unknown tag %q", value), data.TagNameCandidates())
		}
		c.Value = int(t)
	case filter.CategoryPlayingCard:
		// Playing cards are selected by rank/suit/seal/enhancement
		// refinement fields, not a single value enum; a bare "value" on a
		// playingcard clause is a schema error.
		return fail(path+".value", "playingcard clauses select by rank/suit/seal/enhancement, not value", nil)
	}
	return nil
}

func legendaryCandidates() []string {
	out := make([]string, 0, len(data.LegendaryJokers))
	for _, name := range data.JokerNameCandidates() {
		j, _ := data.ResolveJoker(name)
		if data.IsLegendary(j) {
			out = append(out, name)
		}
	}
	return out
}

// classifyVectorizable implements spec.md §4.3 step 4: a clause
// vectorizes when its category supports a vector-stage check on its
// generator and it carries no per-slot constraints that would require
// individual stream cursors.
func classifyVectorizable(c filter.Clause) bool {
	switch c.Category {
	case filter.CategoryJoker, filter.CategoryVoucher, filter.CategorySmallBlindTag,
		filter.CategoryBigBlindTag, filter.CategorySoulJoker,
		filter.CategoryTarot, filter.CategoryPlanet, filter.CategorySpectral:
		// Any per-slot narrowing (a shop/pack slot subset short of "every
		// slot") forces scalar re-verification, since the vector stage
		// only checks generator-level presence, not specific slot indices.
		if isRestrictedSlotSet(c.Sources.ShopSlots, 0, 5) && c.Category != filter.CategorySoulJoker {
			return false
		}
		if isRestrictedSlotSet(c.Sources.PackSlots, 0, 5) {
			return false
		}
		if c.Min > 1 {
			return false
		}
		return true
	default: // playing cards and bosses require per-slot/per-ante walking
		return false
	}
}

func isRestrictedSlotSet(slots set.Set[int], lo, hi int) bool {
	if slots == nil {
		return false
	}
	full := hi - lo + 1
	if slots.Len() != full {
		return true
	}
	for i := lo; i <= hi; i++ {
		if !slots.Contains(i) {
			return true
		}
	}
	return false
}

// planStreams computes the union of (stream-kind, ante) pairs any clause
// touches (spec.md §4.3 step 5), deduplicated and sorted for determinism.
func planStreams(f *filter.Filter) []filter.PlanEntry {
	seen := map[filter.PlanEntry]bool{}
	add := func(kind stream.Kind, ante int) {
		seen[filter.PlanEntry{Kind: kind, Ante: ante}] = true
	}

	for _, c := range f.AllClauses() {
		for ante := range c.Antes {
			switch c.Category {
			case filter.CategoryJoker:
				add(stream.KindShopCommonJoker, ante)
				add(stream.KindShopUncommonJoker, ante)
				add(stream.KindShopRareJoker, ante)
				add(stream.KindShopJokerEdition, ante)
				add(stream.KindBoosterPack, ante)
			case filter.CategorySoulJoker:
				add(stream.KindSoulJoker, ante)
				add(stream.KindTarotArcanaPack, ante)
				add(stream.KindSpectralPack, ante)
				add(stream.KindBoosterPack, ante)
			case filter.CategoryTarot:
				add(stream.KindTarotShop, ante)
				add(stream.KindTarotArcanaPack, ante)
				add(stream.KindBoosterPack, ante)
			case filter.CategoryPlanet:
				add(stream.KindPlanetShop, ante)
				add(stream.KindPlanetCelestialPack, ante)
				add(stream.KindBoosterPack, ante)
			case filter.CategorySpectral:
				add(stream.KindSpectralShop, ante)
				add(stream.KindSpectralPack, ante)
				add(stream.KindBoosterPack, ante)
			case filter.CategoryPlayingCard:
				add(stream.KindPlayingCardStandardPack, ante)
				add(stream.KindBoosterPack, ante)
			case filter.CategorySmallBlindTag, filter.CategoryBigBlindTag:
				add(stream.KindTag, ante)
			case filter.CategoryVoucher:
				add(stream.KindVoucher, ante)
			case filter.CategoryBoss:
				add(stream.KindBoss, ante)
			}
		}
	}

	out := make([]filter.PlanEntry, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Ante < out[j].Ante
	})
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var editionNames = map[string]item.Edition{
	"foil": item.EditionFoil, "holographic": item.EditionHolographic,
	"polychrome": item.EditionPolychrome, "negative": item.EditionNegative,
}

var stickerNames = map[string]item.StickerFlags{
	"eternal": item.StickerEternal, "perishable": item.StickerPerishable, "rental": item.StickerRental,
}

var rankNames = map[string]item.Rank{
	"two": item.RankTwo, "three": item.RankThree, "four": item.RankFour, "five": item.RankFive,
	"six": item.RankSix, "seven": item.RankSeven, "eight": item.RankEight, "nine": item.RankNine,
	"ten": item.RankTen, "jack": item.RankJack, "queen": item.RankQueen, "king": item.RankKing,
	"ace": item.RankAce,
}

var suitNames = map[string]item.Suit{
	"spades": item.SuitSpades, "hearts": item.SuitHearts, "clubs": item.SuitClubs, "diamonds": item.SuitDiamonds,
}

var sealNames = map[string]item.Seal{
	"gold": item.SealGold, "red": item.SealRed, "blue": item.SealBlue, "purple": item.SealPurple,
}

var enhancementNames = map[string]item.Enhancement{
	"bonus": item.EnhancementBonus, "mult": item.EnhancementMult, "wild": item.EnhancementWild,
	"glass": item.EnhancementGlass, "steel": item.EnhancementSteel, "stone": item.EnhancementStone,
	"gold": item.EnhancementGold, "lucky": item.EnhancementLucky,
}
