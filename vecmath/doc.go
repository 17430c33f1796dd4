// Package vecmath provides small, dimension-agnostic numeric vectors used
// throughout the layout engine: particle positions, forces, and placement
// directions. A Vector is a plain []float64 under a named type; dimension is
// fixed at construction (2 or 3 for this engine, though the arithmetic below
// places no such restriction on itself).
//
// There is no allocation-avoiding fixed-size array here (Go generics do not
// let a type parameter fix an array length from a runtime argument); a
// slice-backed vector is the idiomatic equivalent and keeps every operation
// a simple loop.
package vecmath
