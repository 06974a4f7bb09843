package treedist

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSnapshotBuild is called after each snapshot construction.
	// duration is the time taken, err is nil if successful.
	RecordSnapshotBuild(duration time.Duration, err error)

	// RecordPairwise is called after each pairwise matrix computation.
	// trees is the number of compared snapshots.
	RecordPairwise(trees int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSnapshotBuild(time.Duration, error) {}
func (NoopMetricsCollector) RecordPairwise(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SnapshotBuildCount  atomic.Int64
	SnapshotBuildErrors atomic.Int64
	SnapshotBuildNanos  atomic.Int64
	PairwiseCount       atomic.Int64
	PairwiseErrors      atomic.Int64
	PairwiseTrees       atomic.Int64
	PairwiseNanos       atomic.Int64
}

// RecordSnapshotBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotBuild(duration time.Duration, err error) {
	b.SnapshotBuildCount.Add(1)
	b.SnapshotBuildNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SnapshotBuildErrors.Add(1)
	}
}

// RecordPairwise implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPairwise(trees int, duration time.Duration, err error) {
	b.PairwiseCount.Add(1)
	b.PairwiseTrees.Add(int64(trees))
	b.PairwiseNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PairwiseErrors.Add(1)
	}
}

// BasicMetricsStats is a point-in-time snapshot of collected metrics.
type BasicMetricsStats struct {
	SnapshotBuildCount  int64
	SnapshotBuildErrors int64
	SnapshotAvgNanos    int64
	PairwiseCount       int64
	PairwiseErrors      int64
	PairwiseTrees       int64
	PairwiseAvgNanos    int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		SnapshotBuildCount:  b.SnapshotBuildCount.Load(),
		SnapshotBuildErrors: b.SnapshotBuildErrors.Load(),
		PairwiseCount:       b.PairwiseCount.Load(),
		PairwiseErrors:      b.PairwiseErrors.Load(),
		PairwiseTrees:       b.PairwiseTrees.Load(),
	}
	if stats.SnapshotBuildCount > 0 {
		stats.SnapshotAvgNanos = b.SnapshotBuildNanos.Load() / stats.SnapshotBuildCount
	}
	if stats.PairwiseCount > 0 {
		stats.PairwiseAvgNanos = b.PairwiseNanos.Load() / stats.PairwiseCount
	}
	return stats
}
