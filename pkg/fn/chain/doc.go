// Package chain provides a fluent, immutable builder for compositions whose
// steps share one type.
//
// Key operations:
// - New: begin a chain from zero or more steps
// - Then/Before: append or prepend a step, returning a new Chain
// - Func: build the composed function value (left to right, via compose.Pipe)
// - Run: build, invoke and record the outcome as an fn.Result
//
// Adding steps never evaluates anything.
package chain
