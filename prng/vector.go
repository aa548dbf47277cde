// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prng

// LaneWidth is the width of a lane-group: one double-precision SIMD
// vector's worth of lanes (spec §2 "Control flow per seed-batch").
const LaneWidth = 8

// VecState holds LaneWidth independent PRNG states processed in lock-step.
// Go has no portable SIMD intrinsic type, so the "vector" here is an
// unrolled array walked with identical per-lane arithmetic to the scalar
// path — the §8 equivalence property holds because each lane calls the
// exact same Pseudohash/scramble code as the scalar evaluator, not because
// of any hardware vector instruction.
type VecState [LaneWidth]State

// PseudohashVec applies Pseudohash to all lanes with per-lane keys and
// per-lane starting states. keys[k] mixes into states[k] independently of
// every other lane — lane k's result is always byte-identical to calling
// Pseudohash(keys[k], states[k]) directly.
func PseudohashVec(keys [LaneWidth]string, states VecState) VecState {
	var out VecState
	for k := 0; k < LaneWidth; k++ {
		out[k] = Pseudohash(keys[k], states[k])
	}
	return out
}

// RandomVec draws one uniform double per lane in lock-step.
func RandomVec(states VecState) (next VecState, u [LaneWidth]float64) {
	for k := 0; k < LaneWidth; k++ {
		next[k], u[k] = Random(states[k])
	}
	return next, u
}

// ChooseWeightedVec runs ChooseWeighted independently per lane. weights is
// shared across lanes (every lane samples from the same weighted table,
// which is how shop/pack/tag streams work — only the PRNG state differs
// per seed).
func ChooseWeightedVec(states VecState, weights []float64) (next VecState, idx [LaneWidth]int) {
	for k := 0; k < LaneWidth; k++ {
		next[k], idx[k] = ChooseWeighted(states[k], weights)
	}
	return next, idx
}

// SeedStateVec computes the initial state for LaneWidth seeds at once.
func SeedStateVec(seeds [LaneWidth]string) VecState {
	var out VecState
	for k := 0; k < LaneWidth; k++ {
		out[k] = SeedState(seeds[k])
	}
	return out
}
