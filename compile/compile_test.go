// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package compile

import (
	"testing"

	"github.com/cardforge/seedsearch/filter"
	"github.com/stretchr/testify/require"
)

func TestCompilePerkeoNegative(t *testing.T) {
	raw := []byte(`{
		"deck": "red", "stake": "white",
		"must": [{"type": "souljoker", "value": "perkeo", "edition": "negative", "antes": [1,2]}]
	}`)
	f, err := Compile(raw)
	require.NoError(t, err)
	require.Len(t, f.Must, 1)
	require.Equal(t, filter.CategorySoulJoker, f.Must[0].Category)
	require.True(t, f.Must[0].HasEdition)
	require.Empty(t, f.Must[0].Sources.ShopSlots)
	// Copy law: SHOULD was empty, so MUST was copied with a score floor.
	require.Len(t, f.Should, 1)
	require.Equal(t, 1, f.Should[0].Score)
}

func TestCompileUnknownKeyRejected(t *testing.T) {
	raw := []byte(`{"bogus": true}`)
	_, err := Compile(raw)
	require.Error(t, err)
}

func TestCompileUnknownJokerHasCandidates(t *testing.T) {
	raw := []byte(`{"must": [{"type": "joker", "value": "notarealjoker"}]}`)
	_, err := Compile(raw)
	require.Error(t, err)
	var ce *Error
	require.ErrorAs(t, err, &ce)
	require.NotEmpty(t, ce.Candidates)
}

func TestCompileTriboulesOrChicotScoring(t *testing.T) {
	raw := []byte(`{
		"should": [
			{"type": "souljoker", "value": "triboulet", "score": 5},
			{"type": "souljoker", "value": "chicot", "score": 5}
		]
	}`)
	f, err := Compile(raw)
	require.NoError(t, err)
	require.Len(t, f.Should, 2)
	require.Empty(t, f.Must)
}

func TestCompileShopJokerWithMinNotVectorizable(t *testing.T) {
	raw := []byte(`{
		"must": [{"type": "joker", "value": "blueprint", "antes": [2],
			"sources": {"shopSlots": [0,1,2,3,4,5]}, "min": 2}]
	}`)
	f, err := Compile(raw)
	require.NoError(t, err)
	require.False(t, f.Must[0].Vectorizable)
	require.Equal(t, 2, f.Must[0].MinRequired())
}

func TestCompileMustNotBoss(t *testing.T) {
	raw := []byte(`{"mustNot": [{"type": "boss", "value": "thewall", "antes": [4]}]}`)
	f, err := Compile(raw)
	require.NoError(t, err)
	require.Len(t, f.MustNot, 1)
	require.False(t, f.MustNot[0].Vectorizable)
}

func TestCompilePlayingCardRequiresNoValue(t *testing.T) {
	raw := []byte(`{
		"should": [{"type": "playingcard", "rank": "ace", "suit": "spades", "seal": "gold",
			"antes": [1,2,3], "sources": {"packSlots": [0,1,2,3,4,5]}, "score": 3}]
	}`)
	f, err := Compile(raw)
	require.NoError(t, err)
	require.True(t, f.Should[0].HasRank)
	require.True(t, f.Should[0].HasSuit)
	require.True(t, f.Should[0].HasSeal)
}

func TestCompileDefaultAntesIsOneThroughEight(t *testing.T) {
	raw := []byte(`{"must": [{"type": "voucher", "value": "telescope"}]}`)
	f, err := Compile(raw)
	require.NoError(t, err)
	for a := 1; a <= 8; a++ {
		require.True(t, f.Must[0].Antes.Contains(a))
	}
	require.Equal(t, 8, f.Must[0].Antes.Len())
}

func TestCompilePlanDeduplicates(t *testing.T) {
	raw := []byte(`{
		"must": [
			{"type": "voucher", "value": "telescope", "antes": [1]},
			{"type": "voucher", "value": "observatory", "antes": [1]}
		]
	}`)
	f, err := Compile(raw)
	require.NoError(t, err)
	require.Len(t, f.Plan, 1)
}
