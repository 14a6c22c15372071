package lloyd

import (
	"context"
	"fmt"

	"github.com/hupe1980/kmeans/internal/arena"
)

// Workspace is the working state of one run. Every buffer is carved out of
// two slabs backed by a single reservation, so the whole state is acquired
// and released as a unit.
type Workspace struct {
	K   int
	Dim int

	Prev []float64 // centroids used for assignment (k*dim)
	Cur  []float64 // centroids being computed (k*dim)
	Sums []float64 // per-cluster coordinate sums (k*dim)

	Dists  []float64 // distance of each point to its assigned centroid (n)
	Counts []int     // per-cluster member counts (k)
	Labels []int     // assigned cluster per point (n)

	reservation *arena.Reservation
	floats      *arena.Slab[float64]
	ints        *arena.Slab[int]
}

func workspaceLens(n, k, dim int) (floats, ints int) {
	return 3*k*dim + n, k + n
}

// WorkspaceBytes returns the memory a run over n points, k clusters and
// dimension dim reserves.
func WorkspaceBytes(n, k, dim int) int64 {
	nf, ni := workspaceLens(n, k, dim)
	return arena.Size[float64](nf) + arena.Size[int](ni)
}

// NewWorkspace reserves the working state for n points, k clusters and
// dimension dim. If mem is non-nil the total is acquired from it in one call.
func NewWorkspace(ctx context.Context, n, k, dim int, mem arena.MemoryAcquirer) (*Workspace, error) {
	nf, ni := workspaceLens(n, k, dim)

	res, err := arena.Reserve(ctx, mem, WorkspaceBytes(n, k, dim))
	if err != nil {
		return nil, err
	}

	floats, err := arena.New[float64](nf)
	if err != nil {
		res.Release()
		return nil, err
	}
	ints, err := arena.New[int](ni)
	if err != nil {
		res.Release()
		return nil, err
	}

	w := &Workspace{K: k, Dim: dim, reservation: res, floats: floats, ints: ints}

	// a failed Alloc leaves its slab short, which the check below reports
	w.Prev, _ = floats.Alloc(k * dim)
	w.Cur, _ = floats.Alloc(k * dim)
	w.Sums, _ = floats.Alloc(k * dim)
	w.Dists, _ = floats.Alloc(n)
	w.Counts, _ = ints.Alloc(k)
	w.Labels, _ = ints.Alloc(n)

	if floats.Len() != floats.Cap() || ints.Len() != ints.Cap() {
		err := fmt.Errorf("lloyd: workspace carved %d/%d floats and %d/%d ints",
			floats.Len(), floats.Cap(), ints.Len(), ints.Cap())
		w.Release()
		return nil, err
	}

	return w, nil
}

// Reset zeroes the per-iteration accumulators.
func (w *Workspace) Reset() {
	clear(w.Sums)
	clear(w.Counts)
}

// Centroid returns row j of the current centroids.
func (w *Workspace) Centroid(j int) []float64 {
	return w.Cur[j*w.Dim : (j+1)*w.Dim]
}

// Release returns the working memory. The workspace must not be used afterwards.
func (w *Workspace) Release() {
	w.floats.Free()
	w.ints.Free()
	w.reservation.Release()
	*w = Workspace{}
}
