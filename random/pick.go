package random

import (
	"github.com/samber/lo"
	"github.com/samber/lo/mutable"
)

// Choice returns one element of xs picked uniformly. It returns false when
// xs is empty.
func Choice[T any](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return lo.Sample(xs), true
}

// Shuffle reorders xs in place with a Fisher-Yates shuffle.
func Shuffle[T any](xs []T) {
	mutable.Shuffle(xs)
}

// Sample returns min(n, len(xs)) elements of xs drawn without replacement.
// The input is not modified.
func Sample[T any](xs []T, n int) []T {
	if n <= 0 || len(xs) == 0 {
		return []T{}
	}
	return lo.Samples(xs, n)
}

// String returns n random ASCII letters and digits.
func String(n int) string {
	if n <= 0 {
		return ""
	}
	return lo.RandomString(n, lo.AlphanumericCharset)
}
