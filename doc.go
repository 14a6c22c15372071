// Package kmeans implements Lloyd's k-means clustering over dense float64
// vectors.
//
// The caller supplies the dataset and the k initial centroids; kmeans runs
// assignment and mean-update steps until no centroid moves by epsilon or
// more, or until the iteration bound is reached.
//
// # Quick Start
//
//	dataset := [][]float64{{1.0}, {1.1}, {9.0}, {9.2}}
//	initial := [][]float64{{1.0}, {9.0}}
//
//	centroids, err := kmeans.Cluster(4, 1, 2, 10, 0.001, dataset, initial)
//
// The full form returns labels, cluster sizes, inertia and the terminal state:
//
//	res, err := kmeans.Fit(ctx, dataset, initial,
//	    kmeans.WithMaxIter(100),
//	    kmeans.WithEpsilon(1e-4),
//	)
//	if res.Converged() {
//	    fmt.Println(res.Centroids)
//	}
//
// # Choosing Initial Centroids
//
// kmeans does not pick initial centroids. Package seeding provides k-means++:
//
//	idx, _ := seeding.KMeansPlusPlus(dataset, k, rand.New(rand.NewSource(1234)))
//	res, _ := kmeans.Fit(ctx, dataset, seeding.Gather(dataset, idx))
//
// # Empty Clusters
//
// A cluster that receives no points in an iteration has no mean. The
// behavior is selected with WithEmptyClusterPolicy:
//
//	kmeans.EmptyClusterFail   // abort with *EmptyClusterError (default)
//	kmeans.EmptyClusterKeep   // keep the previous centroid
//	kmeans.EmptyClusterReseed // move it onto the farthest point
//
// # Errors
//
// Precondition violations wrap ErrInvalidArgument. Working memory is
// reserved up front; with a resource controller whose memory budget is too
// small the run fails with ErrOutOfMemory and produces no partial result.
// Reaching the iteration bound is not an error: the result reports
// StateExhausted.
//
// # Concurrency
//
// A run is sequential and owns all of its working state, so independent
// runs may execute concurrently. FitAll runs a batch of jobs on a bounded
// number of goroutines:
//
//	results, err := kmeans.FitAll(ctx, jobs, kmeans.WithConcurrency(4))
//
// # Observability
//
//	logger := kmeans.NewTextLogger(slog.LevelDebug)
//	metrics := &kmeans.BasicMetricsCollector{}
//	res, err := kmeans.Fit(ctx, dataset, initial,
//	    kmeans.WithLogger(logger),
//	    kmeans.WithMetricsCollector(metrics),
//	)
package kmeans
