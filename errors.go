package treedist

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewSnapshots is returned when fewer than two snapshots are
	// available for a pairwise computation.
	ErrTooFewSnapshots = errors.New("need at least 2 snapshots to compute pairwise distances")
)

// TreeStructureError indicates a malformed input tree: missing root,
// dangling child/parent reference, or an otherwise inconsistent node store.
// It is raised per tree during snapshot construction; callers decide whether
// to abort the batch or skip the tree.
//
// The underlying structural error can be accessed via errors.Unwrap.
type TreeStructureError struct {
	cause error
}

func (e *TreeStructureError) Error() string {
	return fmt.Sprintf("tree structure: %v", e.cause)
}

func (e *TreeStructureError) Unwrap() error { return e.cause }

// TaxonMismatchError indicates that a snapshot in a comparison batch was
// built over a different taxon set than the first snapshot. It is raised by
// the orchestrating layer before any distance computation begins.
type TaxonMismatchError struct {
	// Index of the offending snapshot within the batch.
	Index int

	// Expected and Actual are the taxon counts of snapshot 0 and of the
	// offending snapshot.
	Expected int
	Actual   int
}

func (e *TaxonMismatchError) Error() string {
	if e.Expected != e.Actual {
		return fmt.Sprintf("snapshot %d has %d taxa, snapshot 0 has %d; all trees must share one taxon set",
			e.Index, e.Actual, e.Expected)
	}
	return fmt.Sprintf("snapshot %d was built over different taxon names than snapshot 0", e.Index)
}
