package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/treedist/tree"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Shuffle pseudo-randomizes the order of elements using swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}

// PermuteNodeIDs returns a structurally identical copy of t whose nodes sit
// at permuted store indices. Taxon names, child order, edge lengths and the
// rooted flag are preserved, so the copy must snapshot identically to t.
func PermuteNodeIDs(t *tree.Tree, rng *RNG) *tree.Tree {
	perm := rng.Perm(len(t.Nodes))

	out := &tree.Tree{
		Nodes:  make([]tree.Node, len(t.Nodes)),
		Root:   perm[t.Root],
		Rooted: t.Rooted,
	}
	for i, n := range t.Nodes {
		m := tree.Node{
			Name:      n.Name,
			Parent:    tree.None,
			Length:    n.Length,
			HasLength: n.HasLength,
		}
		if n.Parent != tree.None {
			m.Parent = perm[n.Parent]
		}
		m.Children = make([]int, len(n.Children))
		for k, c := range n.Children {
			m.Children[k] = perm[c]
		}
		out.Nodes[perm[i]] = m
	}
	return out
}

// RandomBinaryTree builds a rooted binary tree over the given taxon names
// with a random topology and random branch lengths in [0,1). It requires at
// least two names.
func RandomBinaryTree(rng *RNG, names []string) *tree.Tree {
	shuffled := slices.Clone(names)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	t := tree.New(true)

	var build func(parent int, subset []string)
	build = func(parent int, subset []string) {
		var n int
		if len(subset) == 1 {
			n = t.Add(parent, subset[0])
		} else {
			n = t.Add(parent, "")
			cut := 1 + rng.Intn(len(subset)-1)
			build(n, subset[:cut])
			build(n, subset[cut:])
		}
		t.SetLength(n, rng.Float64())
	}

	cut := 1 + rng.Intn(len(shuffled)-1)
	build(t.Root, shuffled[:cut])
	build(t.Root, shuffled[cut:])

	return t
}
