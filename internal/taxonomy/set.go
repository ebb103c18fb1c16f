// Copyright (c) 2026 ArtScope. All rights reserved.

package taxonomy

import (
	"slices"

	"github.com/jenna9192/artscope/pkg/slice"
)

// Set is a duplicate-free collection of leaf values.
//
// Membership is order-irrelevant, but insertion order is retained: the browsing
// layer needs to know which department was selected first. Sets are values; every
// mutating operation returns a new Set and leaves the receiver untouched.
type Set []string

// NewSet builds a Set from items, dropping empty strings and duplicates.
func NewSet(items ...string) Set {
	var set Set
	for _, item := range items {
		if item != "" && !set.Has(item) {
			set = append(set, item)
		}
	}
	return set
}

// Has reports whether item is a member.
func (s Set) Has(item string) bool {
	return slices.Contains(s, item)
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// With returns a copy of s with items appended when not yet present.
func (s Set) With(items ...string) Set {
	out := slices.Clone(s)
	for _, item := range items {
		if item != "" && !out.Has(item) {
			out = append(out, item)
		}
	}
	return out
}

// Without returns a copy of s with every member of items removed.
func (s Set) Without(items ...string) Set {
	drop := Set(items)
	return slice.Filter(s, func(item string) bool { return !drop.Has(item) })
}

// ContainsAll reports whether every member of other is a member of s.
func (s Set) ContainsAll(other Set) bool {
	for _, item := range other {
		if !s.Has(item) {
			return false
		}
	}
	return true
}

// Equal reports set equality, ignoring order.
func (s Set) Equal(other Set) bool {
	return s.Len() == other.Len() && s.ContainsAll(other)
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	out := slices.Clone([]string(s))
	slices.Sort(out)
	return out
}
