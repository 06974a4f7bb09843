package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTreeBasic(t *testing.T) {
	tr, err := ParseTree("((A:1.0,B:1.0):2.0,(C,D));")
	require.NoError(t, err)
	require.NoError(t, tr.Validate())
	assert.True(t, tr.Rooted)

	leaves := tr.Leaves()
	require.Len(t, leaves, 4)

	var names []string
	for _, l := range leaves {
		names = append(names, tr.Nodes[l].Name)
	}
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, names)

	// Root's first child carries length 2.0, leaf C carries none.
	first := tr.Nodes[tr.Root].Children[0]
	assert.True(t, tr.Nodes[first].HasLength)
	assert.Equal(t, 2.0, tr.Nodes[first].Length)
	for _, l := range leaves {
		if tr.Nodes[l].Name == "C" {
			assert.False(t, tr.Nodes[l].HasLength)
		}
	}
}

func TestParseTreeUnrootedInference(t *testing.T) {
	tr, err := ParseTree("((A,B),(C,D),E);")
	require.NoError(t, err)
	assert.False(t, tr.Rooted, "root with three children is treated as unrooted")
}

func TestParseTreeErrors(t *testing.T) {
	_, err := ParseTree("((A,B)")
	assert.Error(t, err)

	_, err = ParseTree("(A,B));")
	assert.Error(t, err)

	_, err = ParseTree("(A:x,B);")
	assert.Error(t, err)
}

func TestPermuteNodeIDs(t *testing.T) {
	tr := MustParseTree("((A:0.1,B:0.2):0.3,(C:0.4,D:0.5):0.6);")
	perm := PermuteNodeIDs(tr, NewRNG(7))

	require.NoError(t, perm.Validate())
	assert.Equal(t, tr.Rooted, perm.Rooted)
	assert.Len(t, perm.Nodes, len(tr.Nodes))
	assert.Len(t, perm.Leaves(), len(tr.Leaves()))
}

func TestRandomBinaryTree(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	tr := RandomBinaryTree(NewRNG(42), names)

	require.NoError(t, tr.Validate())
	assert.True(t, tr.Rooted)
	require.Len(t, tr.Leaves(), len(names))

	var got []string
	for _, l := range tr.Leaves() {
		got = append(got, tr.Nodes[l].Name)
	}
	assert.ElementsMatch(t, names, got)

	// Binary everywhere: every internal node has exactly two children.
	for i := range tr.Nodes {
		if len(tr.Nodes[i].Children) > 0 {
			assert.Len(t, tr.Nodes[i].Children, 2)
		}
	}

	// Same seed, same topology.
	again := RandomBinaryTree(NewRNG(42), names)
	assert.Equal(t, tr, again)
}
