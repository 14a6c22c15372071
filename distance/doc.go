// Package distance provides the Euclidean distance used for centroid
// assignment and convergence checks.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	sq := distance.SquaredEuclidean(a, b)
//
// Both functions assume the inputs have the same length. Passing vectors of
// different lengths is the caller's responsibility; the shorter length is
// not checked and the functions will panic on an out-of-range index if b is
// shorter than a.
package distance
