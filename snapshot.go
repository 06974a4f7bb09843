package treedist

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/treedist/internal/bitvec"
	"github.com/hupe1980/treedist/tree"
)

// Snapshot is an immutable summary of one tree: its canonical branch splits,
// their branch lengths, and the root signature. Snapshots are built once and
// are safe for unsynchronized concurrent reads.
//
// Two snapshots are comparable when they derive from trees over an identical
// taxon-name set. Leaf indices are assigned by sorting taxon names, so the
// same taxon always maps to the same bit position regardless of the node
// identifiers a parser happened to produce.
type Snapshot struct {
	parts   map[string]bitvec.Vector
	lengths map[string]float64
	rootSig []bitvec.Vector
	taxa    []string
	words   int
	rooted  bool
}

// BuildSnapshot converts a parsed tree into its snapshot. Construction is
// pure: it performs no I/O and does not retain a reference to t.
//
// It returns a *TreeStructureError when the tree's node store is malformed
// (no root, dangling or inconsistent references).
func BuildSnapshot(t *tree.Tree) (*Snapshot, error) {
	if err := t.Validate(); err != nil {
		return nil, &TreeStructureError{cause: err}
	}

	// Sort leaves by taxon name and assign dense indices 0..L-1. Missing
	// names default to the empty string. The sort is what guarantees
	// cross-tree index consistency for identical taxon sets.
	leaves := t.Leaves()
	slices.SortStableFunc(leaves, func(a, b int) int {
		return strings.Compare(t.Nodes[a].Name, t.Nodes[b].Name)
	})

	taxa := make([]string, len(leaves))
	leafIndex := make(map[int]int, len(leaves))
	for i, n := range leaves {
		taxa[i] = t.Nodes[n].Name
		leafIndex[n] = i
	}

	words := bitvec.WordsFor(len(leaves))

	// Bottom-up fill of per-node membership vectors. PostOrder yields every
	// child before its parent, so each vector is computed exactly once from
	// finished children.
	vecs := make([]bitvec.Vector, len(t.Nodes))
	for _, n := range t.PostOrder() {
		v := bitvec.New(words)
		node := &t.Nodes[n]
		if len(node.Children) == 0 {
			v.Set(leafIndex[n])
		} else {
			for _, c := range node.Children {
				v.UnionWith(vecs[c])
			}
		}
		vecs[n] = v
	}

	s := &Snapshot{
		parts:   make(map[string]bitvec.Vector),
		lengths: make(map[string]float64),
		taxa:    taxa,
		words:   words,
		rooted:  t.Rooted,
	}

	// Every non-root node covering more than one leaf defines a candidate
	// split. Canonicalization collapses the two encodings of one split, so
	// duplicates (e.g. the two sides of the root edge) merge here.
	for n := range t.Nodes {
		if n == t.Root {
			continue
		}
		v := vecs[n]
		if v.OnesCount() <= 1 {
			continue
		}
		canon := canonicalize(v, len(leaves))
		key := canon.Key()
		s.parts[key] = canon
		s.lengths[key] = edgeLength(&t.Nodes[n])
	}

	// Root signature: the raw (uncanonicalized) vectors of the root's
	// immediate children, sorted. Only meaningful for rooted trees.
	for _, c := range t.Nodes[t.Root].Children {
		s.rootSig = append(s.rootSig, vecs[c].Clone())
	}
	slices.SortFunc(s.rootSig, bitvec.Vector.Compare)

	return s, nil
}

// BuildSnapshots builds one snapshot per tree, in order. The first malformed
// tree aborts the batch with its index attached to the error.
func BuildSnapshots(trees []*tree.Tree, optFns ...Option) ([]*Snapshot, error) {
	o := applyOptions(optFns)

	snapshots := make([]*Snapshot, len(trees))
	for i, t := range trees {
		start := time.Now()
		s, err := BuildSnapshot(t)
		o.metricsCollector.RecordSnapshotBuild(time.Since(start), err)
		if err != nil {
			o.logger.LogSnapshotBuild(context.Background(), i, 0, 0, err)
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		o.logger.LogSnapshotBuild(context.Background(), i, s.LeafCount(), s.NumParts(), nil)
		snapshots[i] = s
	}
	return snapshots, nil
}

// canonicalize fixes one of the two equivalent encodings of a split: the
// side that does NOT contain the lexicographically smallest taxon. That
// taxon always sits at bit 0 because leaf indices are assigned in sorted
// name order. Already-canonical vectors are returned unchanged.
func canonicalize(v bitvec.Vector, leafCount int) bitvec.Vector {
	if v.Test(0) {
		return v.Complement(leafCount)
	}
	return v
}

// edgeLength returns the incoming-edge length of a node, defaulting to 0.0
// when the source tree carried none. The default is defined behavior, not a
// data-quality error.
func edgeLength(n *tree.Node) float64 {
	if n.HasLength {
		return n.Length
	}
	return 0.0
}

// NumParts returns the number of canonical non-trivial splits.
func (s *Snapshot) NumParts() int { return len(s.parts) }

// LeafCount returns the size of the leaf universe.
func (s *Snapshot) LeafCount() int { return len(s.taxa) }

// WordCount returns the number of 64-bit words per split vector.
func (s *Snapshot) WordCount() int { return s.words }

// Rooted reports whether the source tree was rooted.
func (s *Snapshot) Rooted() bool { return s.rooted }

// TaxonNames returns the leaf universe in sorted order.
func (s *Snapshot) TaxonNames() []string {
	return slices.Clone(s.taxa)
}

// sameRootSignature reports whether two snapshots share their root's
// immediate-child splits. Both signatures are sorted at build time.
func sameRootSignature(a, b *Snapshot) bool {
	if len(a.rootSig) != len(b.rootSig) {
		return false
	}
	for i := range a.rootSig {
		if !a.rootSig[i].Equal(b.rootSig[i]) {
			return false
		}
	}
	return true
}

// sameTaxa reports whether two snapshots cover the identical taxon-name set.
func sameTaxa(a, b *Snapshot) bool {
	return slices.Equal(a.taxa, b.taxa)
}
