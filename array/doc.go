// Package array provides generic slice helpers: concatenation, set
// difference, predicate search, joining and the usual filter/map pair.
//
// Helpers never modify their inputs; every result is a fresh slice.
package array
