// Package pipeline loads named compositions from YAML and builds them into
// dynamic function values.
//
//	pipelines:
//	  distinct-count:
//	    pipe: [unique, length]
//	  per-row:
//	    map: distinct-count
//
// A pipeline has exactly one of compose (right to left), pipe (left to right)
// or map (element-wise application of one step). Steps name other pipelines
// or registry functions; pipelines take precedence. Reference cycles are
// rejected.
package pipeline
