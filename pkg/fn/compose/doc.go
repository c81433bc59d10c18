// Package compose builds new function values from existing ones.
//
// - Once: binary composition, Once(f, g)(x) = f(g(x))
// - Compose: n-ary right-to-left composition, folded from Identity
// - Pipe: n-ary left-to-right composition, Compose over the reversed sequence
// - Compose3: typed three-step composition across distinct types
//
// None of these call the composed functions. Work happens, and errors
// surface, only when the returned Func is invoked.
package compose
