package seeding

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/hupe1980/kmeans/distance"
)

// ErrInvalidK is returned when k is not in [1, len(data)].
var ErrInvalidK = errors.New("seeding: invalid number of centroids")

// KMeansPlusPlus returns the indices of k distinct rows of data chosen with
// k-means++. The first index is uniform over all rows; each further index is
// drawn with weight equal to the Euclidean distance (not squared) to the
// nearest already chosen row. Chosen rows have weight zero. If every
// remaining weight is zero (duplicate rows) the draw is uniform over the
// rows not chosen yet.
func KMeansPlusPlus(data [][]float64, k int, rng *rand.Rand) ([]int, error) {
	n := len(data)
	if k <= 0 || k > n {
		return nil, fmt.Errorf("%w: k=%d, rows=%d", ErrInvalidK, k, n)
	}

	chosen := make([]int, 0, k)
	picked := make([]bool, n)
	minDist := make([]float64, n)
	for i := range minDist {
		minDist[i] = math.Inf(1)
	}

	next := rng.Intn(n)
	for {
		chosen = append(chosen, next)
		picked[next] = true
		if len(chosen) == k {
			return chosen, nil
		}

		var total float64
		for i, row := range data {
			if picked[i] {
				minDist[i] = 0
				continue
			}
			if d := distance.Euclidean(row, data[next]); d < minDist[i] {
				minDist[i] = d
			}
			total += minDist[i]
		}

		if total > 0 {
			next = weighted(minDist, total, rng)
		} else {
			next = uniformUnpicked(picked, n-len(chosen), rng)
		}
	}
}

func weighted(weights []float64, total float64, rng *rand.Rand) int {
	target := rng.Float64() * total
	last := -1
	var cum float64
	for i, w := range weights {
		if w == 0 {
			continue
		}
		last = i
		cum += w
		if cum > target {
			return i
		}
	}
	// rounding left target at or above the final sum
	return last
}

func uniformUnpicked(picked []bool, remaining int, rng *rand.Rand) int {
	r := rng.Intn(remaining)
	for i, p := range picked {
		if p {
			continue
		}
		if r == 0 {
			return i
		}
		r--
	}
	return -1
}

// Gather copies the rows of data at idx, in idx order.
func Gather(data [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = append([]float64(nil), data[j]...)
	}
	return out
}
