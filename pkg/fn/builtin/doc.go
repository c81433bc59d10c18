// Package builtin holds small container functions used to demonstrate and
// exercise composition: length, unique, sort, reverse, head, tail, sum, mean
// and sd. Each comes in a typed form and is registered in dynamic form in
// the Default registry.
//
// length and unique reject a nil container with fn.ErrNilContainer, so a
// composition over them fails when it is called with nil, never earlier.
package builtin
