package kmeans

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kmeans/internal/arena"
	"github.com/hupe1980/kmeans/internal/lloyd"
)

var (
	// ErrInvalidArgument is returned when an input violates a precondition
	// (non-positive sizes, k greater than the number of points, negative
	// epsilon, non-finite coordinates, ...).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyCluster is returned, wrapped in an *EmptyClusterError, when a
	// cluster receives no points and the EmptyClusterFail policy is active.
	ErrEmptyCluster = lloyd.ErrEmptyCluster

	// ErrOutOfMemory is returned when the working state of a run could not be
	// reserved.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrNonFinite is returned, together with ErrInvalidArgument, when finite
	// input overflows to an infinite or NaN centroid.
	ErrNonFinite = lloyd.ErrNonFinite
)

// EmptyClusterError identifies the cluster that received no points and the
// 1-based iteration in which it happened.
type EmptyClusterError = lloyd.EmptyClusterError

// ErrDimensionMismatch indicates a row whose length differs from the
// dimensionality of the run.
//
// It matches ErrInvalidArgument under errors.Is.
type ErrDimensionMismatch struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at row %d: expected %d, got %d", e.Row, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrInvalidArgument }

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, arena.ErrAllocationFailed) {
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	if errors.Is(err, lloyd.ErrNonFinite) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
