// Package elements maps function values over ordered containers.
//
// Apply is the sequential, fail-fast mapper; Partial fixes its function
// argument so the mapper composes with single-argument functions.
// ApplyConcurrent maps with a bounded worker group when the element function
// is safe to call from several goroutines.
package elements
