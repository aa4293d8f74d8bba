package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortedKeys returns a map's keys in ascending order.
func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// RotateLeft moves the first n elements to the end, returning a new
// slice. n is taken modulo the length.
func RotateLeft[A any](xs []A, n int) []A {
	if len(xs) == 0 {
		return xs
	}
	n = ((n % len(xs)) + len(xs)) % len(xs)
	res := make([]A, 0, len(xs))
	res = append(res, xs[n:]...)
	res = append(res, xs[:n]...)
	return res
}
