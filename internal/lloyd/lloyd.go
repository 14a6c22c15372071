package lloyd

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/hupe1980/kmeans/internal/arena"
)

// EmptyPolicy selects what happens to a cluster that receives no points.
type EmptyPolicy int

const (
	// EmptyError aborts the run with an *EmptyClusterError.
	EmptyError EmptyPolicy = iota
	// EmptyKeep leaves the centroid where it was in the previous iteration.
	EmptyKeep
	// EmptyReseed moves the centroid onto the point farthest from its assigned
	// centroid. Each point is used for at most one cluster per iteration.
	EmptyReseed
)

var (
	// ErrEmptyCluster is the sentinel wrapped by EmptyClusterError.
	ErrEmptyCluster = errors.New("empty cluster")
	// ErrNonFinite is returned when a centroid mean overflows to an infinite
	// or NaN coordinate.
	ErrNonFinite = errors.New("non-finite centroid")
)

// EmptyClusterError reports a cluster without members.
type EmptyClusterError struct {
	Cluster   int
	Iteration int
}

func (e *EmptyClusterError) Error() string {
	return fmt.Sprintf("cluster %d received no points in iteration %d", e.Cluster, e.Iteration)
}

func (e *EmptyClusterError) Unwrap() error { return ErrEmptyCluster }

// Iteration describes a completed Lloyd step.
type Iteration struct {
	Index     int // 1-based
	Converged bool
	Duration  time.Duration
}

// Config controls a run.
type Config struct {
	MaxIter int
	Epsilon float64
	Empty   EmptyPolicy
	Memory  arena.MemoryAcquirer

	// OnIteration, if set, is called after every iteration.
	OnIteration func(Iteration)
}

// Result is the outcome of a run. All slices are owned by the caller.
type Result struct {
	Centroids  []float64 // k*dim
	Labels     []int     // assignment of each point in the final iteration
	Counts     []int     // cluster sizes in the final iteration
	Iterations int
	Converged  bool
	Inertia    float64 // sum of squared distances in the final assignment pass
}

// Run executes Lloyd's algorithm over the n = len(data)/dim points in data,
// starting from the k = len(initial)/dim centroids in initial.
//
// Each iteration assigns every point to its nearest previous centroid,
// recomputes the centroids as cluster means and stops early once no centroid
// moved by epsilon or more. After MaxIter iterations the last computed
// centroids are returned.
func Run(ctx context.Context, data, initial []float64, dim int, cfg Config) (*Result, error) {
	n := len(data) / dim
	k := len(initial) / dim

	ws, err := NewWorkspace(ctx, n, k, dim, cfg.Memory)
	if err != nil {
		return nil, err
	}
	defer ws.Release()

	copy(ws.Prev, initial)
	copy(ws.Cur, initial)

	res := &Result{}

	for iter := 1; iter <= cfg.MaxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()

		ws.Reset()
		res.Inertia = 0

		for i := 0; i < n; i++ {
			point := data[i*dim : (i+1)*dim]
			idx, d := Nearest(point, ws.Prev, dim)
			ws.Labels[i] = idx
			ws.Dists[i] = d
			res.Inertia += d * d
			Accumulate(ws.Sums, ws.Counts, point, idx)
		}

		if err := updateCentroids(ws, data, iter, cfg.Empty); err != nil {
			return nil, err
		}

		res.Iterations = iter
		res.Converged = Converged(ws.Prev, ws.Cur, dim, cfg.Epsilon)

		if cfg.OnIteration != nil {
			cfg.OnIteration(Iteration{Index: iter, Converged: res.Converged, Duration: time.Since(start)})
		}

		if res.Converged {
			break
		}
		copy(ws.Prev, ws.Cur)
	}

	res.Centroids = slices.Clone(ws.Cur)
	res.Labels = slices.Clone(ws.Labels)
	res.Counts = slices.Clone(ws.Counts)

	return res, nil
}

// updateCentroids writes the cluster means into ws.Cur, applying policy to
// clusters without members.
func updateCentroids(ws *Workspace, data []float64, iter int, policy EmptyPolicy) error {
	dim := ws.Dim
	var reseeded []int

	for j := 0; j < ws.K; j++ {
		cur := ws.Centroid(j)

		if ws.Counts[j] == 0 {
			switch policy {
			case EmptyKeep:
				copy(cur, ws.Prev[j*dim:(j+1)*dim])
			case EmptyReseed:
				p := farthest(ws.Dists, reseeded)
				if p < 0 {
					copy(cur, ws.Prev[j*dim:(j+1)*dim])
					continue
				}
				reseeded = append(reseeded, p)
				copy(cur, data[p*dim:(p+1)*dim])
			default:
				return &EmptyClusterError{Cluster: j, Iteration: iter}
			}
			continue
		}

		count := float64(ws.Counts[j])
		sums := ws.Sums[j*dim : (j+1)*dim]
		for d := range cur {
			cur[d] = sums[d] / count
			if math.IsInf(cur[d], 0) || math.IsNaN(cur[d]) {
				return fmt.Errorf("%w: cluster %d in iteration %d", ErrNonFinite, j, iter)
			}
		}
	}

	return nil
}

// farthest returns the point with the largest distance to its centroid that
// is not in exclude. Ties resolve to the lowest index.
func farthest(dists []float64, exclude []int) int {
	best := -1
	for i, d := range dists {
		if slices.Contains(exclude, i) {
			continue
		}
		if best < 0 || d > dists[best] {
			best = i
		}
	}
	return best
}
