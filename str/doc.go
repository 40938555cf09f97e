// Package str provides string case conversion, padding, truncation and
// masking helpers.
//
// Case helpers treat input as a sequence of runes. CamelCase, KebabCase and
// SnakeCase only change the case of ASCII letters; Capitalize and TitleCase
// apply full Unicode case mapping through golang.org/x/text/cases.
//
//	str.KebabCase("fooBar")              // "foo-bar"
//	str.SnakeCase("foo_barBaz_QuxQUUX")  // "foo_bar_baz_qux_quux"
//	str.CamelCase("foo_barBaz_QuxQUUX")  // "FooBarBazQuxQUUX"
package str
