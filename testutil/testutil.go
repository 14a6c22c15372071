package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Rand returns a fresh *rand.Rand seeded from this RNG, for APIs that take
// their own source (such as seeding.KMeansPlusPlus).
func (r *RNG) Rand() *rand.Rand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rand.New(rand.NewSource(r.rand.Int63()))
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// GaussianVectors generates random vectors with values from a standard normal distribution.
func (r *RNG) GaussianVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.NormFloat64()
		}
		vectors[i] = vec
	}

	return vectors
}

// Blobs generates perCluster points around each center with Gaussian noise
// of standard deviation spread. Points are grouped by center, in center
// order; labels[i] is the index of the center point i was drawn around.
func (r *RNG) Blobs(centers [][]float64, perCluster int, spread float64) ([][]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]float64, 0, len(centers)*perCluster)
	labels := make([]int, 0, len(centers)*perCluster)

	for c, center := range centers {
		for range perCluster {
			p := make([]float64, len(center))
			for j := range p {
				p[j] = center[j] + r.rand.NormFloat64()*spread
			}
			points = append(points, p)
			labels = append(labels, c)
		}
	}

	return points, labels
}

// BruteForceNearest returns the index of the centroid closest to point by
// exhaustive search, first index on ties.
func BruteForceNearest(point []float64, centroids [][]float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range centroids {
		var sum float64
		for j := range point {
			d := point[j] - c[j]
			sum += d * d
		}
		if sum < bestDist {
			bestDist = sum
			best = i
		}
	}
	return best
}

// MeanOf returns the coordinate-wise mean of the points whose label is
// cluster, or nil if there are none.
func MeanOf(points [][]float64, labels []int, cluster int) []float64 {
	var mean []float64
	n := 0
	for i, p := range points {
		if labels[i] != cluster {
			continue
		}
		if mean == nil {
			mean = make([]float64, len(p))
		}
		for j, v := range p {
			mean[j] += v
		}
		n++
	}
	for j := range mean {
		mean[j] /= float64(n)
	}
	return mean
}
