// Package testutil provides testing utilities for the kmeans module.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for synthetic
// datasets with known cluster structure.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.UniformVectors(1000, 16)      // uniform [0, 1)
//	data := rng.GaussianVectors(1000, 16)     // standard normal
//
// # Clustered Data (Ground Truth)
//
//	points, labels := rng.Blobs(centers, 50, 0.1)
//
// # Brute-Force Reference
//
//	idx := testutil.BruteForceNearest(point, centroids)
package testutil
