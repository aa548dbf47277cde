// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package item

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJokerRoundTrip(t *testing.T) {
	it := NewJoker(42, RarityLegendary, EditionNegative, StickerEternal|StickerRental)
	require.Equal(t, CategoryJoker, it.Category())
	require.Equal(t, uint8(42), it.BaseType())
	require.Equal(t, RarityLegendary, it.Rarity())
	require.Equal(t, EditionNegative, it.Edition())
	require.True(t, it.HasSticker(StickerEternal))
	require.True(t, it.HasSticker(StickerRental))
	require.False(t, it.HasSticker(StickerPerishable))
}

func TestPlayingCardRoundTrip(t *testing.T) {
	it := NewPlayingCard(RankAce, SuitSpades, EnhancementNone, SealGold, EditionNone)
	require.Equal(t, CategoryPlayingCard, it.Category())
	require.Equal(t, RankAce, it.Rank())
	require.Equal(t, SuitSpades, it.Suit())
	require.Equal(t, SealGold, it.Seal())
	require.Equal(t, SuitSpades, it.RankSuit().UnpackSuit())
}

func TestCardIdentityRoundTrip(t *testing.T) {
	for r := Rank(0); r < 13; r++ {
		for s := Suit(0); s < 4; s++ {
			id := CardIdentity(r, s)
			gotR, gotS := UnpackCardIdentity(id)
			require.Equal(t, r, gotR)
			require.Equal(t, s, gotS)
		}
	}
}

func TestIsSoul(t *testing.T) {
	const soulTarotType, blackHoleType = 21, 17
	soul := NewCard(CategoryTarot, soulTarotType, EditionNone)
	require.True(t, soul.IsSoul(soulTarotType, blackHoleType))

	notSoul := NewCard(CategoryTarot, 0, EditionNone)
	require.False(t, notSoul.IsSoul(soulTarotType, blackHoleType))

	blackHole := NewCard(CategorySpectral, blackHoleType, EditionNone)
	require.True(t, blackHole.IsSoul(soulTarotType, blackHoleType))
}
