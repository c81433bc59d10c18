// Package dyn composes function values over any.
//
// Typed function values are adapted with Of or OfSlice. The adapter checks the
// argument type only when the function is called, so composing functions
// whose types do not line up is never an error by itself; the mismatch is
// reported as *fn.IncompatibleCallError at the call where it happens.
//
// Compose, Pipe and Once are the generic compose operations instantiated at
// any. ApplyOnElements and PartialApply accept any slice or array value.
package dyn
