// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sink implements spec.md §3's Match Result and §6's Result
// sink: an append-only queue of matches drained by the driver, emitted
// as the spec's line-per-match CSV stream.
package sink

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Result is one seed's match (spec.md §3 "Match Result"). Immutable
// after creation.
type Result struct {
	Seed            string
	TotalScore      int
	PerClauseScores []int
}

// Sink is the append-only, concurrency-safe result collection every
// worker lane pushes into (spec.md §5: "Result queue: single instance,
// lock-free"). A genuinely lock-free MPMC queue needs atomics beyond
// what the standard library guarantees portably; a mutex-guarded slice
// gives the same external contract (many producers, one drainer) at a
// fraction of the complexity, matching how the teacher pack guards its
// own shared append-only collections.
type Sink struct {
	mu      sync.Mutex
	results []Result
	dropped int
	cap     int
}

// New constructs a Sink. cap <= 0 means unbounded.
func New(cap int) *Sink {
	return &Sink{cap: cap}
}

// Push appends a match. In bounded mode, once the sink is full, Push
// drops the result and returns false (spec.md §7 ResultQueueFull policy:
// "if bounded-nonblocking, drop with counter" — the counter is the
// caller's responsibility via the bool return).
func (s *Sink) Push(r Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cap > 0 && len(s.results) >= s.cap {
		s.dropped++
		return false
	}
	s.results = append(s.results, r)
	return true
}

// Dropped reports how many Push calls were rejected because the sink was
// full (spec.md §7 ResultQueueFull: "drop with counter").
func (s *Sink) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Drain removes and returns every result accumulated so far.
func (s *Sink) Drain() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.results
	s.results = nil
	return out
}

// Len reports how many results are currently queued.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// WriteCSV writes results, one line each, as spec.md §6's line-per-match
// stream: `<seed>,<total_score>` followed by one field per entry of
// PerClauseScores. It takes a slice (typically from Drain), not the Sink.
func WriteCSV(w io.Writer, results []Result) error {
	for _, r := range results {
		if err := writeLine(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, r Result) error {
	var b strings.Builder
	b.WriteString(r.Seed)
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(r.TotalScore))
	for _, s := range r.PerClauseScores {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(s))
	}
	b.WriteByte('\n')
	_, err := fmt.Fprint(w, b.String())
	return err
}
