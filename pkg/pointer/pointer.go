// Copyright (c) 2026 ArtScope. All rights reserved.

// Package pointer builds pointers to literals for optional fields such as
// the year bounds of a collection search.
package pointer

// To returns a pointer to the provided value.
// It is useful for optional struct fields (e.g. pointer.To(1400)).
func To[T any](v T) *T {
	return &v
}
