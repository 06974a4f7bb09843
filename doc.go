// Package treedist computes pairwise dissimilarity between phylogenetic
// trees sharing an identical taxon set.
//
// Three metrics are provided:
//
//   - Unweighted: counts differing branch splits (Robinson-Foulds)
//   - Weighted: accumulates absolute branch-length differences
//   - BranchScore: the Euclidean variant (Kuhner-Felsenstein)
//
// # Quick Start
//
// Trees come from an external parser as tree.Tree values. Each tree is
// converted once into an immutable Snapshot: a canonical, hashable encoding
// of its branch splits. Snapshots are then compared pairwise:
//
//	snapshots, err := treedist.BuildSnapshots(trees)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m, err := treedist.PairwiseMatrix(ctx, snapshots, treedist.MetricUnweighted,
//	    treedist.WithWorkers(8),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.At(0, 1))
//
// Individual pairs can be compared directly with Unweighted, Weighted and
// BranchScore.
//
// # Comparability
//
// Leaf indices are assigned by sorting taxon names, so two trees over the
// same taxa always encode a given split identically, no matter which node
// identifiers their parsers produced. All trees in one comparison batch
// must share one taxon set; PairwiseMatrix validates this before computing
// anything.
//
// # Concurrency
//
// Snapshots are immutable after construction and safe for unsynchronized
// concurrent reads. PairwiseMatrix distributes the C(N,2) pairs over a
// bounded worker set; sequential and parallel runs produce bit-identical
// matrices.
package treedist
