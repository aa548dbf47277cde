// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package search implements spec.md §5's concurrency model: a per-run
// Context carrying cancellation and auto-cutoff state as shared atomics
// (replacing the source's pervasive singletons, per spec.md §9), a
// worker-per-core pool pulling lane-groups from a Driver, and the
// reference SequentialDriver.
package search

import (
	"sync/atomic"
	"time"

	"github.com/cardforge/seedsearch/filter"
)

// defaultAutoCutoffWindow is spec.md §4.5's "a wall-clock deadline
// (default 10 s)" that freezes the auto-cutoff ceiling.
const defaultAutoCutoffWindow = 10 * time.Second

// Context is the per-run state every worker goroutine shares by
// reference (spec.md §9: "re-architect as a per-run Context passed by
// reference into every worker. No process-wide state."). All fields
// worth mutating concurrently are atomics; Context itself carries no
// mutex.
type Context struct {
	autoCutoff  bool
	fixedCutoff int64
	deadline    time.Time

	cancelled       atomic.Bool
	resultsFound    atomic.Int64
	highestScore    atomic.Int64
	deadlineReached atomic.Bool
}

// NewContext builds a Context for one run from the compiled filter's
// cutoff mode. window overrides the default 10s auto-cutoff deadline;
// pass 0 to use the default.
func NewContext(cutoff filter.Cutoff, window time.Duration) *Context {
	if window <= 0 {
		window = defaultAutoCutoffWindow
	}
	return &Context{
		autoCutoff:  cutoff.Auto,
		fixedCutoff: int64(cutoff.Fixed),
		deadline:    nowFunc().Add(window),
	}
}

// nowFunc exists so tests can freeze or rewind the deadline check
// without sleeping.
var nowFunc = time.Now

// AutoCutoff reports whether this run is in auto-cutoff mode, for
// callers (the worker pool's metrics wiring, the /stats handler) that
// need to publish the mode without reaching into Context's private
// fields.
func (c *Context) AutoCutoff() bool { return c.autoCutoff }

// Cancel sets the run's cancellation flag (spec.md §5: "a single
// cancelled flag is atomically set by the driver").
func (c *Context) Cancel() { c.cancelled.Store(true) }

// Cancelled reports whether the run has been cancelled. Workers check
// this at lane-group boundaries and between clauses.
func (c *Context) Cancelled() bool { return c.cancelled.Load() }

// AcceptResult applies spec.md §4.5's cutoff policy to a passing seed's
// score, returning whether it should be emitted. In fixed-cutoff mode
// this is a plain comparison; in auto-cutoff mode the first 10 results
// are accepted unconditionally to establish a ceiling, and thereafter
// only results at or above the running maximum are accepted — the
// maximum itself stops rising once the deadline passes, but acceptance
// continues at the frozen ceiling (spec.md §5: "cancelled is not set —
// the search continues").
func (c *Context) AcceptResult(score int) bool {
	if !c.autoCutoff {
		return int64(score) >= c.fixedCutoff
	}

	s := int64(score)
	if c.resultsFound.Load() < 10 {
		c.raiseCeiling(s)
		c.resultsFound.Add(1)
		return true
	}

	if !c.deadlineReached.Load() && nowFunc().After(c.deadline) {
		c.deadlineReached.Store(true)
	}

	ceiling := c.highestScore.Load()
	if s < ceiling {
		return false
	}
	if !c.deadlineReached.Load() {
		c.raiseCeiling(s)
	}
	c.resultsFound.Add(1)
	return true
}

func (c *Context) raiseCeiling(score int64) {
	for {
		cur := c.highestScore.Load()
		if score <= cur {
			return
		}
		if c.highestScore.CompareAndSwap(cur, score) {
			return
		}
	}
}

// Stats is a point-in-time snapshot of the run's auto-cutoff state, for
// the optional /stats operational endpoint.
type Stats struct {
	ResultsFound    int64
	HighestScore    int64
	DeadlineReached bool
	Cancelled       bool
}

// Snapshot reads the Context's current state.
func (c *Context) Snapshot() Stats {
	return Stats{
		ResultsFound:    c.resultsFound.Load(),
		HighestScore:    c.highestScore.Load(),
		DeadlineReached: c.deadlineReached.Load(),
		Cancelled:       c.cancelled.Load(),
	}
}
