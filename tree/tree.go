// Package tree defines the in-memory tree contract consumed by snapshot
// construction. Parsing of on-disk tree formats is the responsibility of an
// external IO layer; this package only models the parsed result.
//
// Trees use an index-based node store: nodes are addressed by their position
// in the Nodes slice, and traversal is iterative, so arbitrarily deep trees
// never exhaust the goroutine stack.
package tree

import (
	"errors"
	"fmt"
	"slices"
)

// None marks the absence of a node reference (for example the root's parent).
const None = -1

// Node is a single tree node. Leaves are nodes without children.
type Node struct {
	// Name is the taxon name for leaves. It may be empty; internal node
	// names are ignored by snapshot construction.
	Name string

	// Parent is the index of the parent node, or None for the root.
	Parent int

	// Children holds the indices of this node's children.
	Children []int

	// Length is the length of the edge from Parent to this node.
	// Only meaningful when HasLength is true.
	Length float64

	// HasLength reports whether the source assigned a length to the
	// incoming edge.
	HasLength bool
}

// Tree is a rooted or unrooted tree over an index-based node store.
//
// The zero value is not usable; construct trees with New and Add, or fill
// the fields directly and rely on Validate to reject inconsistent stores.
type Tree struct {
	Nodes  []Node
	Root   int
	Rooted bool
}

var (
	// ErrNoRoot is returned when the root reference is missing or out of range.
	ErrNoRoot = errors.New("tree: no root")

	// ErrDanglingRef is returned when a child or parent reference does not
	// resolve to a consistent node.
	ErrDanglingRef = errors.New("tree: dangling node reference")
)

// New returns a tree holding a single root node.
func New(rooted bool) *Tree {
	return &Tree{
		Nodes:  []Node{{Parent: None}},
		Root:   0,
		Rooted: rooted,
	}
}

// Add appends a new node under parent and returns its index.
func (t *Tree) Add(parent int, name string) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Name: name, Parent: parent})
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, idx)
	return idx
}

// SetLength assigns the incoming-edge length of node i.
func (t *Tree) SetLength(i int, length float64) {
	t.Nodes[i].Length = length
	t.Nodes[i].HasLength = true
}

// Leaves returns the indices of all childless nodes in store order.
func (t *Tree) Leaves() []int {
	var leaves []int
	for i := range t.Nodes {
		if len(t.Nodes[i].Children) == 0 {
			leaves = append(leaves, i)
		}
	}
	return leaves
}

// PostOrder returns all nodes reachable from the root, ordered so that every
// child precedes its parent. The traversal is iterative.
func (t *Tree) PostOrder() []int {
	order := make([]int, 0, len(t.Nodes))
	stack := []int{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		stack = append(stack, t.Nodes[n].Children...)
	}
	// Reversing a preorder puts every descendant before its ancestor.
	slices.Reverse(order)
	return order
}

// Validate checks the structural integrity of the node store: the root must
// exist, every child reference must resolve to a node whose parent points
// back, and every node must be reachable from the root exactly once.
func (t *Tree) Validate() error {
	if len(t.Nodes) == 0 || t.Root < 0 || t.Root >= len(t.Nodes) {
		return ErrNoRoot
	}
	if t.Nodes[t.Root].Parent != None {
		return fmt.Errorf("%w: root %d has parent %d", ErrDanglingRef, t.Root, t.Nodes[t.Root].Parent)
	}

	seen := make([]bool, len(t.Nodes))
	stack := []int{t.Root}
	reached := 0
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			return fmt.Errorf("%w: node %d reached twice", ErrDanglingRef, n)
		}
		seen[n] = true
		reached++
		for _, c := range t.Nodes[n].Children {
			if c < 0 || c >= len(t.Nodes) {
				return fmt.Errorf("%w: node %d references child %d", ErrDanglingRef, n, c)
			}
			if t.Nodes[c].Parent != n {
				return fmt.Errorf("%w: child %d has parent %d, expected %d", ErrDanglingRef, c, t.Nodes[c].Parent, n)
			}
			stack = append(stack, c)
		}
	}
	if reached != len(t.Nodes) {
		return fmt.Errorf("%w: %d of %d nodes unreachable from root", ErrDanglingRef, len(t.Nodes)-reached, len(t.Nodes))
	}
	return nil
}
