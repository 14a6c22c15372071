package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFit is called after each run. state is the last state reached:
	// StateInitialized if the run failed before its first iteration
	// (validation, memory reservation), StateIterating if it was aborted
	// inside the loop. err is nil if successful.
	RecordFit(k, iterations int, state State, duration time.Duration, err error)

	// RecordIteration is called after each Lloyd iteration.
	RecordIteration(iteration int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, int, State, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(int, time.Duration)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount       atomic.Int64
	FitErrors      atomic.Int64
	FitConverged   atomic.Int64
	FitExhausted   atomic.Int64
	FitTotalNanos  atomic.Int64
	IterationCount atomic.Int64
	IterationNanos atomic.Int64
	ClustersFitted atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(k, iterations int, state State, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
		return
	}
	b.ClustersFitted.Add(int64(k))
	switch state {
	case StateConverged:
		b.FitConverged.Add(1)
	case StateExhausted:
		b.FitExhausted.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(iteration int, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:          b.FitCount.Load(),
		FitErrors:         b.FitErrors.Load(),
		FitConverged:      b.FitConverged.Load(),
		FitExhausted:      b.FitExhausted.Load(),
		FitAvgNanos:       avg(b.FitTotalNanos.Load(), b.FitCount.Load()),
		IterationCount:    b.IterationCount.Load(),
		IterationAvgNanos: avg(b.IterationNanos.Load(), b.IterationCount.Load()),
		ClustersFitted:    b.ClustersFitted.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount          int64
	FitErrors         int64
	FitConverged      int64
	FitExhausted      int64
	FitAvgNanos       int64
	IterationCount    int64
	IterationAvgNanos int64
	ClustersFitted    int64
}
