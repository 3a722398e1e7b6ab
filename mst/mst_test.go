package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clonelab/lineage/distmat"
	"github.com/clonelab/lineage/mst"
)

// refSequences: root AAAA, then AAAT, AATT, TTTT at root distances 1, 2, 4.
var refSequences = []string{"AAAA", "AAAT", "AATT", "TTTT"}

// TestBuild_ReferenceChain pins the nearest-neighbor chain of the reference
// scenario: AAAT joins the root, AATT joins AAAT (distance 1 beats the
// root's 2), TTTT joins AATT (distance 2 beats AAAT's 3 and the root's 4).
func TestBuild_ReferenceChain(t *testing.T) {
	m, err := distmat.New(refSequences)
	require.NoError(t, err)

	tree, err := mst.Build(refSequences, m)
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 0, 1, 2}, tree)
}

// TestBuild_ShuffleKeepsDistances verifies shuffling changes only tie
// resolution: with no ties in the reference matrix, every seed realizes the
// same tree.
func TestBuild_ShuffleKeepsDistances(t *testing.T) {
	m, err := distmat.New(refSequences)
	require.NoError(t, err)

	want, err := mst.Build(refSequences, m)
	require.NoError(t, err)

	for seed := int64(1); seed <= 5; seed++ {
		got, err := mst.Build(refSequences, m, mst.WithShuffle(true), mst.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, want, got, "seed %d", seed)
	}
}

// TestBuild_BareMatrix exercises the consensus stage's final pass: no
// sequences, tree built purely over matrix entries.
func TestBuild_BareMatrix(t *testing.T) {
	// 3 nodes; node 1 close to root, node 2 close to node 1.
	m := distmat.NewFilled(3, 0)
	m.Set(1, 0, 1)
	m.Set(1, 2, 9)
	m.Set(2, 0, 5)
	m.Set(2, 1, 2)

	tree, err := mst.Build(nil, m)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 0, 1}, tree)
}

// TestBuild_WithAncestors checks the parent vector covers real plus inferred
// indices and every real node still reaches the root.
func TestBuild_WithAncestors(t *testing.T) {
	m, err := distmat.New(refSequences)
	require.NoError(t, err)

	tree, err := mst.Build(refSequences, m,
		mst.WithShuffle(true),
		mst.WithAncestors(true),
		mst.WithSeed(9),
	)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(tree), len(refSequences))

	// Chase every real node to the root, bounded by the node count.
	for c := 1; c < len(refSequences); c++ {
		p := uint32(c)
		for hops := 0; p != 0; hops++ {
			require.Less(t, hops, len(tree), "node %d does not reach the root", c)
			p = tree[p]
		}
	}
}

// TestBuild_NilMatrix surfaces the sentinel.
func TestBuild_NilMatrix(t *testing.T) {
	_, err := mst.Build(refSequences, nil)
	assert.ErrorIs(t, err, mst.ErrNoMatrix)
}

// TestParsimonyScore sums child-parent distances over the reference chain.
func TestParsimonyScore(t *testing.T) {
	m, err := distmat.New(refSequences)
	require.NoError(t, err)

	tree, err := mst.Build(refSequences, m)
	require.NoError(t, err)

	// Edges: 1→0 (d=1), 2→1 (d=1), 3→2 (d=2).
	assert.Equal(t, uint32(4), mst.ParsimonyScore(tree, m))
}
