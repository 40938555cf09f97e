// Package object provides helpers over Go maps: listing keys, values and
// entries, and building filtered or merged copies.
//
// Listing helpers return elements in map iteration order, which is
// unspecified. Sort the result when order matters.
package object

import "github.com/samber/lo"

// Entry is a single key/value pair of a map.
type Entry[K comparable, V any] = lo.Entry[K, V]

// Keys returns the keys of a map.
func Keys[K comparable, V any](m map[K]V) []K {
	return lo.Keys(m)
}

// Values returns the values of a map.
func Values[K comparable, V any](m map[K]V) []V {
	return lo.Values(m)
}

// Entries returns the key/value pairs of a map.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	return lo.Entries(m)
}

// HasKey reports whether m contains key.
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	return lo.HasKey(m, key)
}

// Pick returns a new map holding only the listed keys that exist in m.
func Pick[K comparable, V any](m map[K]V, keys []K) map[K]V {
	return lo.PickByKeys(m, keys)
}

// Omit returns a copy of m without the listed keys.
func Omit[K comparable, V any](m map[K]V, keys []K) map[K]V {
	return lo.OmitByKeys(m, keys)
}

// Merge returns a new map with the entries of a and b. Values from b win
// when both maps hold the same key.
func Merge[K comparable, V any](a, b map[K]V) map[K]V {
	return lo.Assign(a, b)
}
