// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stream

import (
	"github.com/cardforge/seedsearch/data"
	"github.com/cardforge/seedsearch/item"
)

// SoulJokerStream resolves the single joker placed when a Soul card (The
// Soul tarot or The Black Hole spectral) is consumed. spec.md §4.3 notes
// soul-joker clauses never consult shop_slots — this stream is the only
// source of a soul joker's identity.
type SoulJokerStream struct {
	nameCur    *cursor
	editionCur *cursor
}

func newSoulJokerStream(seed string, ante int) *SoulJokerStream {
	return &SoulJokerStream{
		nameCur:    newCursor(seed, Descriptor{KindSoulJoker, ante, 0}),
		editionCur: newCursor(seed, Descriptor{KindSoulJoker, ante, 1}),
	}
}

// Next draws the next soul joker: a uniform pick over data.LegendaryJokers
// plus an independent edition draw.
func (s *SoulJokerStream) Next() item.Item {
	idx := s.nameCur.chooseUniform(len(data.LegendaryJokers))
	name := data.LegendaryJokers[idx]
	edition := data.ResolveEdition(s.editionCur.draw())
	return item.NewJoker(uint8(name), item.RarityLegendary, edition, 0)
}
