// Package lloyd implements the numeric kernel of Lloyd's k-means algorithm.
//
// All buffers are flat and row-major: a set of k points of dimension dim is a
// []float64 of length k*dim with point j at [j*dim:(j+1)*dim]. Callers are
// expected to have validated shapes; the kernel does not re-check them.
//
// Used by the root kmeans package, which handles validation, conversion from
// [][]float64, logging and metrics.
package lloyd
