// Package fn defines the function value shared by every fcomp package:
// Func[In, Out], a single-argument callable that reports failure through an
// error instead of panicking.
//
// Highlights:
// - Func/Lift/Identity: build function values
// - Run: invoke a Func and record the outcome as a Result[T]
// - Finally: reduce a Result[T] to a concrete value via handlers
// - ErrNilFunc/ErrNilContainer/IncompatibleCallError: failure taxonomy
//
// Building a function value never evaluates anything. Errors surface only when
// a Func is called.
package fn
