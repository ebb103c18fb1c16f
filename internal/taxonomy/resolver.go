// Copyright (c) 2026 ArtScope. All rights reserved.

package taxonomy

// Status is the tri-state of a node: checked (All), indeterminate (Partial), or
// unchecked (neither).
type Status struct {
	All     bool `json:"all"`
	Partial bool `json:"partial"`
}

// LeavesOf returns the set of leaves under the node at path. Without a subgroup it
// is the union of every subgroup of the group. A leaf path yields that single leaf
// when it lives under the node. Unknown nodes resolve to an empty set.
func LeavesOf(h *Hierarchy[string], path Path) Set {
	if path.IsLeaf() && path.Group == "" {
		if HasTerm(h, path.Leaf) {
			return NewSet(path.Leaf)
		}
		return nil
	}

	leaves, ok := h.Leaves(path.Group, path.Subgroup)
	if !ok {
		return nil
	}

	set := NewSet(leaves...)
	if path.IsLeaf() {
		if set.Has(path.Leaf) {
			return NewSet(path.Leaf)
		}
		return nil
	}
	return set
}

// RangeOf returns the union range of every leaf range under the node at path: the
// minimum of the minimums and the maximum of the maximums. The boolean is false
// when the node does not exist or holds no leaves.
func RangeOf(h *Hierarchy[Period], path Path) (YearRange, bool) {
	period, ok := ResolvePeriod(h, path)
	if !ok {
		return YearRange{}, false
	}
	return period.YearRange, true
}

// ResolvePeriod returns the period a selection of the node at path stands for. For
// a leaf it is the leaf itself; for a group or subgroup it is the aggregate range
// named after the node.
func ResolvePeriod(h *Hierarchy[Period], path Path) (Period, bool) {
	if path.IsLeaf() {
		if path.Group == "" {
			return FindPeriod(h, path.Leaf)
		}
		leaves, ok := h.Leaves(path.Group, path.Subgroup)
		if !ok {
			return Period{}, false
		}
		for _, leaf := range leaves {
			if leaf.Name == path.Leaf {
				return leaf, true
			}
		}
		return Period{}, false
	}

	leaves, ok := h.Leaves(path.Group, path.Subgroup)
	if !ok || len(leaves) == 0 {
		return Period{}, false
	}

	union := leaves[0].YearRange
	for _, leaf := range leaves[1:] {
		union = union.Union(leaf.YearRange)
	}

	name := path.Group
	if path.Subgroup != "" {
		name = path.Subgroup
	}
	return Period{Name: name, YearRange: union}, true
}

// Union returns the smallest range covering both r and other.
func (r YearRange) Union(other YearRange) YearRange {
	return YearRange{
		MinYear: min(r.MinYear, other.MinYear),
		MaxYear: max(r.MaxYear, other.MaxYear),
	}
}

// Contains reports whether inner lies within r, inclusive on both bounds.
func (r YearRange) Contains(inner YearRange) bool {
	return r.MinYear <= inner.MinYear && inner.MaxYear <= r.MaxYear
}

// SelectionStatus computes the tri-state of a node whose leaves are given. All is
// true iff leaves is non-empty and fully selected; Partial iff some but not all
// leaves are selected.
func SelectionStatus(leaves, selected Set) Status {
	if leaves.Len() == 0 {
		return Status{}
	}

	count := 0
	for _, leaf := range leaves {
		if selected.Has(leaf) {
			count++
		}
	}

	return Status{
		All:     count == leaves.Len(),
		Partial: count > 0 && count < leaves.Len(),
	}
}

// TimeSelectionStatus computes the tri-state of a time node. All is true iff the
// selected range equals the candidate; Partial iff it is a different range lying
// within the candidate's bounds. A nil selection is unchecked.
func TimeSelectionStatus(candidate YearRange, selected *YearRange) Status {
	if selected == nil {
		return Status{}
	}
	if *selected == candidate {
		return Status{All: true}
	}
	return Status{Partial: candidate.Contains(*selected)}
}
