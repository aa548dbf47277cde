// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuilderBuildsValidConfig(t *testing.T) {
	cfg, err := NewBuilder().
		WithFilterPath("filter.json").
		WithDeck("red").
		WithStake("white").
		WithFixedCutoff(5).
		WithThreads(4).
		Build()
	require.NoError(t, err)
	require.Equal(t, "filter.json", cfg.FilterPath)
	require.Equal(t, 5, cfg.Cutoff.Fixed)
	require.Equal(t, 4, cfg.Threads)
}

func TestBuilderRejectsUnknownDeck(t *testing.T) {
	_, err := NewBuilder().WithFilterPath("f.json").WithDeck("nonsense").Build()
	require.Error(t, err)
}

func TestBuilderRejectsEmptyFilterPath(t *testing.T) {
	_, err := NewBuilder().Build()
	require.Error(t, err)
}

func TestBuilderAutoCutoffDefaultsWindow(t *testing.T) {
	cfg, err := NewBuilder().WithFilterPath("f.json").WithAutoCutoff(0).Build()
	require.NoError(t, err)
	require.True(t, cfg.Cutoff.Auto)
	require.Equal(t, 10*time.Second, cfg.AutoCutoff)
}

func TestBuilderFirstErrorSticks(t *testing.T) {
	_, err := NewBuilder().WithThreads(-1).WithFilterPath("f.json").Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "threads")
}
