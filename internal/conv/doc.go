// Package conv converts between the caller-facing [][]float64 representation
// and the flat row-major buffers used by the clustering kernel, and provides
// bounds-checked integer conversions.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
