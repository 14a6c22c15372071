// Package seeding chooses initial centroids for k-means.
//
// KMeansPlusPlus picks the first centroid uniformly and every further one
// with probability proportional to its Euclidean distance to the nearest
// centroid chosen so far. Results are deterministic for a given *rand.Rand
// seed.
package seeding
