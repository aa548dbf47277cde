// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the run-time knobs that sit outside the compiled
// filter itself: which seeds to walk, how many workers to run, where
// the cutoff comes from, and where to publish metrics. Adapted from
// teacher_config/builder.go's fluent Builder and teacher_config/types.go's
// Valid() pattern; the consensus-specific K/Alpha/Beta quorum fields are
// replaced with this engine's worker/cutoff/deck/stake fields, the
// cross-field "auto-adjust" behavior (Builder.WithSampleSize bumping
// AlphaPreference) has no analogue here so it is dropped rather than
// carried over unadapted.
package config

import (
	"fmt"
	"time"

	"github.com/cardforge/seedsearch/data"
	"github.com/cardforge/seedsearch/filter"
)

// RunConfig holds everything one search run needs besides the compiled
// filter itself.
type RunConfig struct {
	FilterPath  string
	Deck        data.Deck
	Stake       data.Stake
	Cutoff      filter.Cutoff
	AutoCutoff  time.Duration
	Threads     int
	MaxSeeds    int
	MetricsAddr string
}

// NewRunConfig returns a RunConfig with the reference implementation's
// defaults (spec.md §6 CLI flags): no auto-cutoff, one worker per
// logical core (0 means "let search.Run pick runtime.NumCPU()"), the
// full seed space, metrics disabled.
func NewRunConfig() *RunConfig {
	return &RunConfig{
		Deck:       data.DeckRed,
		Stake:      data.StakeWhite,
		Cutoff:     filter.Cutoff{Auto: false, Fixed: 1},
		AutoCutoff: 10 * time.Second,
		Threads:    0,
		MaxSeeds:   0,
	}
}

// Builder provides a fluent interface for constructing a RunConfig,
// collecting the first validation error encountered and returning it
// from Build rather than panicking mid-chain.
type Builder struct {
	cfg *RunConfig
	err error
}

// NewBuilder starts a Builder from the default RunConfig.
func NewBuilder() *Builder {
	return &Builder{cfg: NewRunConfig()}
}

// WithFilterPath sets the path to the filter JSON document.
func (b *Builder) WithFilterPath(path string) *Builder {
	if b.err != nil {
		return b
	}
	if path == "" {
		b.err = fmt.Errorf("filter path must not be empty")
		return b
	}
	b.cfg.FilterPath = path
	return b
}

// WithDeck resolves and sets the deck by name.
func (b *Builder) WithDeck(name string) *Builder {
	if b.err != nil {
		return b
	}
	d, ok := data.ResolveDeck(name)
	if !ok {
		b.err = fmt.Errorf("unknown deck %q (candidates: %v)", name, data.DeckNames())
		return b
	}
	b.cfg.Deck = d
	return b
}

// WithStake resolves and sets the stake by name.
func (b *Builder) WithStake(name string) *Builder {
	if b.err != nil {
		return b
	}
	s, ok := data.ResolveStake(name)
	if !ok {
		b.err = fmt.Errorf("unknown stake %q (candidates: %v)", name, data.StakeNames())
		return b
	}
	b.cfg.Stake = s
	return b
}

// WithFixedCutoff sets a fixed score cutoff, disabling auto-cutoff mode.
func (b *Builder) WithFixedCutoff(cutoff int) *Builder {
	if b.err != nil {
		return b
	}
	if cutoff < 1 {
		b.err = fmt.Errorf("cutoff must be at least 1, got %d", cutoff)
		return b
	}
	b.cfg.Cutoff = filter.Cutoff{Auto: false, Fixed: cutoff}
	return b
}

// WithAutoCutoff enables auto-cutoff mode with the given deadline window
// (0 keeps the 10s default from NewRunConfig).
func (b *Builder) WithAutoCutoff(window time.Duration) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.Cutoff = filter.Cutoff{Auto: true}
	if window > 0 {
		b.cfg.AutoCutoff = window
	}
	return b
}

// WithThreads sets the worker count. 0 defers to runtime.NumCPU() at
// run time.
func (b *Builder) WithThreads(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = fmt.Errorf("threads must be >= 0, got %d", n)
		return b
	}
	b.cfg.Threads = n
	return b
}

// WithMaxSeeds bounds the seed space walked. 0 means unbounded.
func (b *Builder) WithMaxSeeds(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = fmt.Errorf("maxSeeds must be >= 0, got %d", n)
		return b
	}
	b.cfg.MaxSeeds = n
	return b
}

// WithMetricsAddr sets the optional metrics/health HTTP listen address.
// Empty disables the operational surface entirely.
func (b *Builder) WithMetricsAddr(addr string) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.MetricsAddr = addr
	return b
}

// Build validates and returns the final RunConfig.
func (b *Builder) Build() (*RunConfig, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Valid(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// Valid reports whether the RunConfig is internally consistent.
func (c *RunConfig) Valid() error {
	switch {
	case c.FilterPath == "":
		return fmt.Errorf("filterPath must not be empty")
	case !c.Cutoff.Auto && c.Cutoff.Fixed < 1:
		return fmt.Errorf("fixed cutoff must be >= 1, got %d", c.Cutoff.Fixed)
	case c.Threads < 0:
		return fmt.Errorf("threads must be >= 0, got %d", c.Threads)
	case c.MaxSeeds < 0:
		return fmt.Errorf("maxSeeds must be >= 0, got %d", c.MaxSeeds)
	case c.Cutoff.Auto && c.AutoCutoff <= 0:
		return fmt.Errorf("autoCutoff deadline must be > 0 when auto-cutoff is enabled")
	}
	return nil
}
