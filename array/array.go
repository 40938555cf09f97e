package array

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Concat returns a new slice holding the elements of a followed by those of b.
func Concat[T any](a, b []T) []T {
	return slices.Concat(a, b)
}

// Difference returns the elements of xs that do not appear in values, in
// their original order. Runs of equal adjacent elements in xs are collapsed
// to one before filtering.
//
//	array.Difference([]int{1, 1, 2, 3, 9}, []int{2, 3}) // [1 9]
func Difference[T comparable](xs, values []T) []T {
	base := slices.Compact(slices.Clone(xs))
	return lo.Without(base, values...)
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func FindIndex[T any](xs []T, pred func(T) bool) int {
	_, idx, ok := lo.FindIndexOf(xs, pred)
	if !ok {
		return -1
	}
	return idx
}

// FindLastIndex returns the index of the last element satisfying pred, or -1.
func FindLastIndex[T any](xs []T, pred func(T) bool) int {
	_, idx, ok := lo.FindLastIndexOf(xs, pred)
	if !ok {
		return -1
	}
	return idx
}

// Join renders every element with fmt.Sprint and joins them with sep.
func Join[T any](xs []T, sep string) string {
	parts := lo.Map(xs, func(item T, _ int) string {
		return fmt.Sprint(item)
	})
	return strings.Join(parts, sep)
}

// Contains checks if a slice contains a value.
func Contains[T comparable](slice []T, val T) bool {
	return lo.Contains(slice, val)
}

// Filter returns a new slice containing only elements that satisfy the predicate.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	return lo.Filter(slice, func(item T, _ int) bool {
		return predicate(item)
	})
}

// Map transforms a slice using the given function.
func Map[T any, U any](slice []T, transform func(T) U) []U {
	return lo.Map(slice, func(item T, _ int) U {
		return transform(item)
	})
}
