// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package set is the generic Set[T] container the filter model uses for
// a clause's ante set and its shop/pack slot restrictions (the stream
// package's active-voucher set and boss seen-pools are plain maps).
// Adapted from teacher_utils/set/set.go: trimmed to
// the operations this engine actually calls (Of, NewSet, Add, Contains,
// Len, List) and dropped Union/Difference/Overlaps/Peek/Pop/String/JSON
// marshaling, none of which any caller here needs.
package set

import "golang.org/x/exp/maps"

// minSetSize is the smallest backing map this package allocates.
const minSetSize = 16

// Set is a set of comparable elements, backed by a map.
type Set[T comparable] map[T]struct{}

// Of returns a Set initialized with elts.
func Of[T comparable](elts ...T) Set[T] {
	s := NewSet[T](len(elts))
	s.Add(elts...)
	return s
}

// NewSet returns an empty set sized for roughly size elements.
func NewSet[T comparable](size int) Set[T] {
	if size < 0 {
		size = 0
	}
	if size < minSetSize {
		size = minSetSize
	}
	return make(Set[T], size)
}

// Add inserts elts into the set, allocating the backing map on first use.
func (s *Set[T]) Add(elts ...T) {
	if *s == nil {
		*s = NewSet[T](2 * len(elts))
	}
	for _, elt := range elts {
		(*s)[elt] = struct{}{}
	}
}

// Contains reports whether elt is in the set. A nil set contains nothing.
func (s Set[T]) Contains(elt T) bool {
	_, ok := s[elt]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int { return len(s) }

// List returns the set's elements in unspecified order.
func (s Set[T]) List() []T { return maps.Keys(s) }
