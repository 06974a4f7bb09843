package treedist

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// progressInterval throttles pairwise progress log records.
const progressInterval = time.Second

// Matrix is a symmetric pairwise distance matrix with a zero diagonal.
// Values[i][j] == Values[j][i] is the distance between snapshots i and j.
type Matrix struct {
	// Labels identifies the compared trees, in input order.
	Labels []string

	// Values is the N×N distance matrix.
	Values [][]float64
}

// Dim returns the number of compared snapshots.
func (m *Matrix) Dim() int { return len(m.Values) }

// At returns the distance between snapshots i and j.
func (m *Matrix) At(i, j int) float64 { return m.Values[i][j] }

// PairwiseMatrix computes the chosen metric across all unordered pairs of a
// snapshot collection and assembles the symmetric result matrix.
//
// All inputs are validated before any distance computation begins: at least
// two snapshots are required (ErrTooFewSnapshots) and every snapshot must
// cover the taxon set of the first one (*TaxonMismatchError).
//
// Pairs are distributed across a bounded worker set; each pair reads only
// its two immutable snapshots and owns its two output cells, so the fill
// phase needs no locking. Sequential (WithWorkers(1)) and parallel runs
// produce bit-identical matrices.
func PairwiseMatrix(ctx context.Context, snapshots []*Snapshot, metric Metric, optFns ...Option) (*Matrix, error) {
	o := applyOptions(optFns)

	start := time.Now()
	m, err := pairwiseMatrix(ctx, snapshots, metric, o)
	o.metricsCollector.RecordPairwise(len(snapshots), time.Since(start), err)
	o.logger.LogPairwise(ctx, metric, len(snapshots), time.Since(start), err)

	return m, err
}

func pairwiseMatrix(ctx context.Context, snapshots []*Snapshot, metric Metric, o options) (*Matrix, error) {
	if len(snapshots) < 2 {
		return nil, ErrTooFewSnapshots
	}
	for i := 1; i < len(snapshots); i++ {
		if !sameTaxa(snapshots[0], snapshots[i]) {
			return nil, &TaxonMismatchError{
				Index:    i,
				Expected: snapshots[0].LeafCount(),
				Actual:   snapshots[i].LeafCount(),
			}
		}
	}

	fn, err := Provider(metric)
	if err != nil {
		return nil, err
	}

	n := len(snapshots)

	labels := o.labels
	switch {
	case labels == nil:
		labels = make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("tree_%d", i)
		}
	case len(labels) != n:
		return nil, fmt.Errorf("got %d labels for %d snapshots", len(labels), n)
	default:
		labels = slices.Clone(labels)
	}

	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}

	// Enumerate the C(N,2) unordered pairs once.
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	var done atomic.Int64
	limiter := rate.NewLimiter(rate.Every(progressInterval), 1)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		chunk := pairs[w*len(pairs)/workers : (w+1)*len(pairs)/workers]
		g.Go(func() error {
			for _, p := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				i, j := p[0], p[1]
				d := fn(snapshots[i], snapshots[j])
				// Distinct pairs touch disjoint cell pairs.
				values[i][j] = d
				values[j][i] = d

				if completed := done.Add(1); limiter.Allow() {
					o.logger.DebugContext(ctx, "pairwise progress",
						"metric", metric.String(),
						"done", completed,
						"total", len(pairs),
					)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Matrix{Labels: labels, Values: values}, nil
}
