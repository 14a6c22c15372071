package lloyd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearest(t *testing.T) {
	centroids := []float64{
		0, 0, // 0
		10, 10, // 1
		20, 20, // 2
	}

	idx, d := Nearest([]float64{1, 1}, centroids, 2)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, math.Sqrt2, d, 1e-12)

	idx, _ = Nearest([]float64{19, 19}, centroids, 2)
	assert.Equal(t, 2, idx)
}

func TestNearest_TieBreaksToLowestIndex(t *testing.T) {
	centroids := []float64{
		-1, // 0
		1,  // 1
		-1, // 2, duplicate of 0
	}

	idx, d := Nearest([]float64{0}, centroids, 1)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1.0, d)

	idx, _ = Nearest([]float64{-1}, centroids, 1)
	assert.Equal(t, 0, idx)
}

func TestNearest_NoCentroids(t *testing.T) {
	idx, d := Nearest([]float64{1}, nil, 1)
	assert.Equal(t, -1, idx)
	assert.True(t, math.IsInf(d, 1))

	idx, _ = Nearest([]float64{1}, []float64{1}, 0)
	assert.Equal(t, -1, idx)
}

func TestNearest_IsMinimum(t *testing.T) {
	centroids := []float64{3, 7, -2, 5, 5, 0.5, -4, 1}
	dim := 2
	k := len(centroids) / dim

	for _, p := range [][]float64{{0, 0}, {4, 4}, {-3, 1}, {5, 0.5}, {100, -100}} {
		idx, best := Nearest(p, centroids, dim)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, k)
		for j := 0; j < k; j++ {
			_, d := Nearest(p, centroids[j*dim:(j+1)*dim], dim)
			assert.LessOrEqual(t, best, d)
		}
	}
}

func TestClosest(t *testing.T) {
	centroids := []float64{
		0, 0, // 0
		10, 10, // 1
		20, 20, // 2
	}

	assert.Equal(t, []int{0, 1}, Closest([]float64{1, 1}, centroids, 2, 2))
	assert.Equal(t, []int{2}, Closest([]float64{19, 19}, centroids, 2, 1))
	assert.Equal(t, []int{1, 0, 2}, Closest([]float64{9, 9}, centroids, 2, 10))
	assert.Nil(t, Closest([]float64{1, 1}, centroids, 2, 0))
}

func TestClosest_StableOnTies(t *testing.T) {
	centroids := []float64{1, -1, 1, -1}
	assert.Equal(t, []int{0, 1, 2, 3}, Closest([]float64{0}, centroids, 1, 4))
}

func TestAccumulate(t *testing.T) {
	sums := make([]float64, 2*3)
	counts := make([]int, 2)

	Accumulate(sums, counts, []float64{1, 2, 3}, 1)
	Accumulate(sums, counts, []float64{4, 5, 6}, 1)
	Accumulate(sums, counts, []float64{7, 8, 9}, 0)

	assert.Equal(t, []float64{7, 8, 9, 5, 7, 9}, sums)
	assert.Equal(t, []int{1, 2}, counts)
}

func TestConverged(t *testing.T) {
	prev := []float64{0, 0, 10, 10}

	tests := []struct {
		name    string
		cur     []float64
		epsilon float64
		want    bool
	}{
		{"Identical", []float64{0, 0, 10, 10}, 0.001, true},
		{"WithinTolerance", []float64{0.0005, 0, 10, 10.0005}, 0.001, true},
		{"AtTolerance", []float64{0.001, 0, 10, 10}, 0.001, false},
		{"SecondMoved", []float64{0, 0, 11, 10}, 0.5, false},
		{"ZeroEpsilonExact", []float64{0, 0, 10, 10}, 0, true},
		{"ZeroEpsilonMoved", []float64{0, 1e-12, 10, 10}, 0, false},
		{"HugeEpsilon", []float64{1e6, -1e6, 0, 0}, 1e9, true},
		{"NaNNeverConverges", []float64{math.NaN(), 0, 10, 10}, 1e9, false},
		{"InfNeverConverges", []float64{0, 0, math.Inf(1), 10}, 1e9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Converged(prev, tt.cur, 2, tt.epsilon))
		})
	}
}

func TestConverged_Monotone(t *testing.T) {
	prev := []float64{0, 0, 5, 5}
	cur := []float64{0.3, 0.4, 5, 5.2}

	for _, e1 := range []float64{0, 0.1, 0.5, 0.51, 1} {
		if !Converged(prev, cur, 2, e1) {
			continue
		}
		for _, e2 := range []float64{e1 + 1e-9, e1 * 2, e1 + 10} {
			assert.True(t, Converged(prev, cur, 2, e2), "e1=%v e2=%v", e1, e2)
		}
	}
}
