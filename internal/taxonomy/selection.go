// Copyright (c) 2026 ArtScope. All rights reserved.

package taxonomy

// ToggleLeaf flips the membership of leaf in selected.
func ToggleLeaf(selected Set, leaf string) Set {
	if selected.Has(leaf) {
		return selected.Without(leaf)
	}
	return selected.With(leaf)
}

// ToggleGroup applies an all-or-nothing toggle for a group or subgroup. When every
// leaf of the node is already selected they are all deselected; otherwise the
// node's leaves are added. Leaves outside the node are never touched.
//
// Toggling twice only round-trips from the all or none states: a partially
// selected node goes to all, then to none.
func ToggleGroup(selected Set, leaves Set) Set {
	if SelectionStatus(leaves, selected).All {
		return selected.Without(leaves...)
	}
	return selected.With(leaves...)
}

// SelectPeriod applies the exclusive time selection rule. The candidate replaces
// whatever was selected before; selecting the same range again clears it.
func SelectPeriod(current *Period, candidate Period) *Period {
	if current != nil && current.YearRange == candidate.YearRange {
		return nil
	}
	return &candidate
}
