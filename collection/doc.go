// Package collection provides whole-slice transforms: chunking, flattening,
// grouping, de-duplication, partitioning, zipping and counting.
package collection
