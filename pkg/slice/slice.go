// Copyright (c) 2026 ArtScope. All rights reserved.

// Package slice has the two generic helpers the taxonomy code leans on.
// A nil input yields a nil output.
package slice

// Map applies transform to every element.
func Map[T, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter keeps the elements for which keep returns true, in order.
func Filter[T any](input []T, keep func(T) bool) []T {
	if input == nil {
		return nil
	}
	var result []T
	for _, v := range input {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}
