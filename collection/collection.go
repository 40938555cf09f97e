package collection

import (
	"slices"

	"github.com/samber/lo"
)

// Pair holds one element from each input of Zip.
type Pair[A, B any] = lo.Tuple2[A, B]

// Chunk splits xs into consecutive groups of at most size elements. The last
// group holds the remainder. A size of zero or less yields no groups.
//
//	collection.Chunk([]int{1, 2, 3, 4, 5, 6, 7}, 3) // [[1 2 3] [4 5 6] [7]]
func Chunk[T any](xs []T, size int) [][]T {
	if size <= 0 || len(xs) == 0 {
		return [][]T{}
	}
	return lo.Map(lo.Chunk(xs, size), func(c []T, _ int) []T {
		return slices.Clone(c)
	})
}

// Flatten concatenates the inner slices of nested into one slice.
func Flatten[T any](nested [][]T) []T {
	return lo.Flatten(nested)
}

// GroupBy buckets xs by the key returned from key. Elements keep their input
// order inside each bucket.
func GroupBy[T any, K comparable](xs []T, key func(T) K) map[K][]T {
	return lo.GroupBy(xs, key)
}

// Unique returns xs with duplicates removed, keeping the first occurrence of
// each value in its original position.
func Unique[T comparable](xs []T) []T {
	return lo.Uniq(xs)
}

// Partition splits xs into the elements that satisfy pred and those that do
// not. Both results preserve input order.
func Partition[T any](xs []T, pred func(T) bool) (matched, rest []T) {
	return lo.FilterReject(xs, func(item T, _ int) bool {
		return pred(item)
	})
}

// Zip pairs a[i] with b[i]. The result is as long as the shorter input.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	return lo.Zip2(a[:n], b[:n])
}

// CountBy counts the elements of xs per key.
func CountBy[T any, K comparable](xs []T, key func(T) K) map[K]int {
	return lo.CountValuesBy(xs, key)
}
