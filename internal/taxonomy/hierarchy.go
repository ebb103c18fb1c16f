// Copyright (c) 2026 ArtScope. All rights reserved.

/*
Package taxonomy holds the static filter hierarchies used to browse the collection
and the pure functions that resolve them.

A hierarchy is a fixed three level tree: group → subgroup → leaves. Departments and
mediums carry bare string leaves; the time hierarchy carries named year ranges.
Hierarchies are built once and never mutated, so every function here is a plain
tree traversal without caching.
*/
package taxonomy

// # Tree Shape

// Hierarchy is an ordered three level tree whose leaves are of type L.
type Hierarchy[L any] struct {
	Name   string     `json:"name"`
	Groups []Group[L] `json:"groups"`
}

// Group is a top level grouping of a [Hierarchy].
type Group[L any] struct {
	Name      string        `json:"name"`
	Subgroups []Subgroup[L] `json:"subgroups"`
}

// Subgroup is the second level; it owns the leaves.
type Subgroup[L any] struct {
	Name   string `json:"name"`
	Leaves []L    `json:"leaves"`
}

// YearRange is an inclusive range of years. Negative years are BCE.
type YearRange struct {
	MinYear int `json:"minYear"`
	MaxYear int `json:"maxYear"`
}

// Period is a named year range. It is both the leaf of the time hierarchy and the
// value of a time selection.
type Period struct {
	Name string `json:"name"`
	YearRange
}

// Path addresses a node. Group alone names a group, Group and Subgroup name a
// subgroup, and a non-empty Leaf names a single leaf.
type Path struct {
	Group    string `json:"group"`
	Subgroup string `json:"subgroup"`
	Leaf     string `json:"leaf"`
}

// IsLeaf reports whether the path addresses a single leaf.
func (p Path) IsLeaf() bool {
	return p.Leaf != ""
}

// # Lookups

// FindGroup returns the group with the given name.
func (h *Hierarchy[L]) FindGroup(name string) (*Group[L], bool) {
	for i := range h.Groups {
		if h.Groups[i].Name == name {
			return &h.Groups[i], true
		}
	}
	return nil, false
}

// FindSubgroup returns the subgroup with the given name.
func (g *Group[L]) FindSubgroup(name string) (*Subgroup[L], bool) {
	for i := range g.Subgroups {
		if g.Subgroups[i].Name == name {
			return &g.Subgroups[i], true
		}
	}
	return nil, false
}

// Leaves returns every leaf under the interior node at group/subgroup, in menu
// order. An empty subgroup selects the whole group. The boolean is false when the
// node does not exist.
func (h *Hierarchy[L]) Leaves(group, subgroup string) ([]L, bool) {
	g, ok := h.FindGroup(group)
	if !ok {
		return nil, false
	}

	if subgroup != "" {
		sub, ok := g.FindSubgroup(subgroup)
		if !ok {
			return nil, false
		}
		return sub.Leaves, true
	}

	var leaves []L
	for _, sub := range g.Subgroups {
		leaves = append(leaves, sub.Leaves...)
	}
	return leaves, true
}

// Walk calls fn for every leaf together with its group and subgroup names.
func (h *Hierarchy[L]) Walk(fn func(group, subgroup string, leaf L)) {
	for _, g := range h.Groups {
		for _, sub := range g.Subgroups {
			for _, leaf := range sub.Leaves {
				fn(g.Name, sub.Name, leaf)
			}
		}
	}
}

// HasTerm reports whether a category hierarchy contains the leaf anywhere.
func HasTerm(h *Hierarchy[string], term string) bool {
	found := false
	h.Walk(func(_, _ string, leaf string) {
		if leaf == term {
			found = true
		}
	})
	return found
}

// FindPeriod returns the leaf period with the given name.
func FindPeriod(h *Hierarchy[Period], name string) (Period, bool) {
	var (
		match Period
		found bool
	)
	h.Walk(func(_, _ string, leaf Period) {
		if !found && leaf.Name == name {
			match, found = leaf, true
		}
	})
	return match, found
}
