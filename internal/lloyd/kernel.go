package lloyd

import (
	"math"
	"sort"

	"github.com/hupe1980/kmeans/distance"
)

// Nearest finds the closest centroid for a point.
// It returns the centroid index and the Euclidean distance to it. Comparison
// is strict, so the earliest of several equally close centroids wins.
// Returns -1 if there are no centroids.
func Nearest(point, centroids []float64, dim int) (int, float64) {
	if dim <= 0 {
		return -1, math.Inf(1)
	}
	k := len(centroids) / dim
	if k == 0 {
		return -1, math.Inf(1)
	}

	best := 0
	minDist := math.Inf(1)

	for j := 0; j < k; j++ {
		d := distance.Euclidean(point, centroids[j*dim:(j+1)*dim])
		if d < minDist {
			minDist = d
			best = j
		}
	}

	return best, minDist
}

type centroidDist struct {
	id   int
	dist float64
}

// Closest returns the indices of the n closest centroids to point, nearest
// first. Equal distances keep index order.
func Closest(point, centroids []float64, dim int, n int) []int {
	if dim <= 0 {
		return nil
	}
	k := len(centroids) / dim
	n = min(n, k)
	if n <= 0 {
		return nil
	}

	dists := make([]centroidDist, k)
	for j := 0; j < k; j++ {
		dists[j] = centroidDist{id: j, dist: distance.Euclidean(point, centroids[j*dim:(j+1)*dim])}
	}

	sort.SliceStable(dists, func(a, b int) bool {
		return dists[a].dist < dists[b].dist
	})

	result := make([]int, n)
	for i := range n {
		result[i] = dists[i].id
	}
	return result
}

// Accumulate adds point into the running sum of cluster idx and bumps its count.
func Accumulate(sums []float64, counts []int, point []float64, idx int) {
	dim := len(point)
	row := sums[idx*dim : (idx+1)*dim]
	for i, v := range point {
		row[i] += v
	}
	counts[idx]++
}

// Converged reports whether every centroid in cur lies strictly within
// epsilon of its counterpart in prev. It stops at the first pair that does not.
// With epsilon == 0 only centroids that did not move at all count as converged.
// A NaN distance never counts as converged.
func Converged(prev, cur []float64, dim int, epsilon float64) bool {
	if dim <= 0 {
		return true
	}
	k := len(prev) / dim
	for j := 0; j < k; j++ {
		lo, hi := j*dim, (j+1)*dim
		d := distance.Euclidean(prev[lo:hi], cur[lo:hi])
		if !(d < epsilon) && d != 0 {
			return false
		}
	}
	return true
}
