package kmeans

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kmeans/internal/conv"
	"github.com/hupe1980/kmeans/internal/lloyd"
)

// State is the lifecycle state of a run.
type State int

const (
	// StateInitialized means the inputs were accepted but no iteration ran.
	StateInitialized State = iota
	// StateIterating means the run is inside the Lloyd loop.
	StateIterating
	// StateConverged means no centroid moved by epsilon or more in the last iteration.
	StateConverged
	// StateExhausted means the iteration bound was reached without convergence.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Result is the outcome of a run. It is owned by the caller.
type Result struct {
	// Centroids holds the final k centroids.
	Centroids [][]float64
	// Labels holds, for every point, the cluster it was assigned to in the
	// final iteration (against the centroids of the iteration before).
	Labels []int
	// Counts holds the cluster sizes of the final iteration.
	Counts []int
	// Iterations is the number of Lloyd iterations executed.
	Iterations int
	// State is StateConverged or StateExhausted.
	State State
	// Inertia is the sum of squared distances of the final assignment pass.
	Inertia float64
}

// Converged reports whether the run stopped because the centroids settled.
func (r *Result) Converged() bool {
	return r.State == StateConverged
}

// Members returns, for every cluster, the set of point indices assigned to
// it in the final iteration.
func (r *Result) Members() ([]*roaring.Bitmap, error) {
	members := make([]*roaring.Bitmap, len(r.Centroids))
	for i := range members {
		members[i] = roaring.New()
	}

	for i, label := range r.Labels {
		id, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		members[label].Add(id)
	}

	return members, nil
}

// Cluster runs Lloyd's algorithm on rows points of dimension cols, starting
// from k initial centroids, and returns the k final centroids.
//
// It is the positional form of Fit: the sizes are checked against the slices
// and violations are reported as ErrInvalidArgument instead of being trusted.
func Cluster(rows, cols, k, maxIter int, epsilon float64, dataset, initial [][]float64) ([][]float64, error) {
	switch {
	case rows <= 0:
		return nil, invalidArgument("rows must be positive, got %d", rows)
	case cols <= 0:
		return nil, invalidArgument("cols must be positive, got %d", cols)
	case k <= 0:
		return nil, invalidArgument("k must be positive, got %d", k)
	case len(dataset) != rows:
		return nil, invalidArgument("dataset has %d rows, expected %d", len(dataset), rows)
	case len(initial) != k:
		return nil, invalidArgument("initial centroids have %d rows, expected %d", len(initial), k)
	case len(dataset[0]) != cols:
		return nil, &ErrDimensionMismatch{Row: 0, Expected: cols, Actual: len(dataset[0])}
	}

	res, err := Fit(context.Background(), dataset, initial, WithMaxIter(maxIter), WithEpsilon(epsilon))
	if err != nil {
		return nil, err
	}
	return res.Centroids, nil
}

// Fit clusters dataset starting from the given initial centroids.
//
// The dimensionality is taken from the first dataset row; every dataset row
// and every centroid must match it. The number of clusters is len(initial)
// and must not exceed len(dataset). Fit checks ctx between iterations.
//
// Fit allocates its working state per call and keeps no shared state, so
// concurrent calls with independent inputs are safe.
func Fit(ctx context.Context, dataset, initial [][]float64, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	start := time.Now()
	k := len(initial)

	if err := validate(dataset, initial, o); err != nil {
		o.metricsCollector.RecordFit(k, 0, StateInitialized, time.Since(start), err)
		o.logger.LogFit(ctx, nil, time.Since(start), err)
		return nil, err
	}

	dim := len(dataset[0])
	logger := o.logger.WithK(k).WithDimension(dim).WithCount(len(dataset))

	cfg := lloyd.Config{
		MaxIter: o.maxIter,
		Epsilon: o.epsilon,
		Empty:   o.emptyCluster.lloyd(),
		OnIteration: func(it lloyd.Iteration) {
			logger.LogIteration(ctx, it.Index, it.Converged, it.Duration)
			o.metricsCollector.RecordIteration(it.Index, it.Duration)
		},
	}
	if o.resources != nil {
		cfg.Memory = o.resources
	}

	out, err := lloyd.Run(ctx, conv.Flatten(dataset, dim), conv.Flatten(initial, dim), dim, cfg)
	if err != nil {
		err = translateError(err)
		// the working state is reserved before the first iteration
		state := StateIterating
		if errors.Is(err, ErrOutOfMemory) {
			state = StateInitialized
		}
		o.metricsCollector.RecordFit(k, 0, state, time.Since(start), err)
		logger.LogFit(ctx, nil, time.Since(start), err)
		return nil, err
	}

	res := &Result{
		Centroids:  conv.Unflatten(out.Centroids, dim),
		Labels:     out.Labels,
		Counts:     out.Counts,
		Iterations: out.Iterations,
		State:      StateExhausted,
		Inertia:    out.Inertia,
	}
	if out.Converged {
		res.State = StateConverged
	}

	o.metricsCollector.RecordFit(k, res.Iterations, res.State, time.Since(start), nil)
	logger.LogFit(ctx, res, time.Since(start), nil)

	return res, nil
}

func validate(dataset, initial [][]float64, o options) error {
	switch {
	case len(dataset) == 0:
		return invalidArgument("dataset is empty")
	case len(dataset[0]) == 0:
		return invalidArgument("dimension must be positive")
	case len(initial) == 0:
		return invalidArgument("k must be positive")
	case len(initial) > len(dataset):
		return invalidArgument("k (%d) exceeds the number of points (%d)", len(initial), len(dataset))
	case o.maxIter <= 0:
		return invalidArgument("max iterations must be positive, got %d", o.maxIter)
	case o.epsilon < 0 || math.IsNaN(o.epsilon):
		return invalidArgument("epsilon must be non-negative, got %v", o.epsilon)
	}

	dim := len(dataset[0])
	if err := validateRows(dataset, dim); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	if err := validateRows(initial, dim); err != nil {
		return fmt.Errorf("initial centroids: %w", err)
	}
	return nil
}

func validateRows(rows [][]float64, dim int) error {
	for i, row := range rows {
		if len(row) != dim {
			return &ErrDimensionMismatch{Row: i, Expected: dim, Actual: len(row)}
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return invalidArgument("non-finite value %v at row %d, column %d", v, i, j)
			}
		}
	}
	return nil
}

// Assign returns the index of the centroid nearest to point.
// Ties resolve to the lowest index.
func Assign(point []float64, centroids [][]float64) (int, error) {
	dim, err := checkQuery(point, centroids)
	if err != nil {
		return -1, err
	}
	idx, _ := lloyd.Nearest(point, conv.Flatten(centroids, dim), dim)
	return idx, nil
}

// ClosestCentroids returns the indices of the n centroids closest to point,
// nearest first. Ties keep index order. n is clipped to len(centroids).
func ClosestCentroids(point []float64, centroids [][]float64, n int) ([]int, error) {
	dim, err := checkQuery(point, centroids)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, invalidArgument("n must be positive, got %d", n)
	}
	return lloyd.Closest(point, conv.Flatten(centroids, dim), dim, n), nil
}

func checkQuery(point []float64, centroids [][]float64) (int, error) {
	if len(centroids) == 0 {
		return 0, invalidArgument("no centroids")
	}
	dim := len(point)
	if dim == 0 {
		return 0, invalidArgument("dimension must be positive")
	}
	if err := validateRows(centroids, dim); err != nil {
		return 0, err
	}
	return dim, nil
}
