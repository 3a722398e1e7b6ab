package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clonelab/lineage/network"
)

// chain builds 0 → 1 → 2 → 3 with unit edges.
func chain(t *testing.T) *network.Network {
	t.Helper()
	nw := network.New()
	for id := 0; id < 4; id++ {
		_, err := nw.AddNode(id)
		require.NoError(t, err)
	}
	for id := 1; id < 4; id++ {
		require.NoError(t, nw.AddEdge(id-1, id, 1, 1))
	}
	return nw
}

func TestAddNode_Duplicate(t *testing.T) {
	nw := network.New()
	_, err := nw.AddNode(7)
	require.NoError(t, err)
	_, err = nw.AddNode(7)
	assert.ErrorIs(t, err, network.ErrDuplicateID)
}

func TestAddEdge_MissingEndpoint(t *testing.T) {
	nw := network.New()
	_, err := nw.AddNode(0)
	require.NoError(t, err)

	assert.ErrorIs(t, nw.AddEdge(0, 1, 1, 1), network.ErrNodeNotFound)
	assert.ErrorIs(t, nw.AddEdge(9, 0, 1, 1), network.ErrNodeNotFound)
}

func TestAddEdge_LinksAndRecords(t *testing.T) {
	nw := chain(t)

	n1, ok := nw.Node(1)
	require.True(t, ok)
	parent, ok := n1.Parent()
	require.True(t, ok)
	assert.Equal(t, 0, parent)
	assert.Equal(t, 1.0, n1.Length)
	assert.Equal(t, 1.0, n1.Confidence)

	root, _ := nw.Node(0)
	assert.True(t, root.IsRoot())
	assert.Equal(t, []int{1}, root.Children())

	leaf, _ := nw.Node(3)
	assert.True(t, leaf.IsLeaf())
}

func TestNodes_SortedByID(t *testing.T) {
	nw := network.New()
	for _, id := range []int{5, 0, 3} {
		_, err := nw.AddNode(id)
		require.NoError(t, err)
	}

	var ids []int
	for _, n := range nw.Nodes() {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []int{0, 3, 5}, ids)
	assert.Equal(t, 3, nw.Len())
}

func TestSetSequence_CleansAndTranslates(t *testing.T) {
	nw := network.New()
	n, err := nw.AddNode(0)
	require.NoError(t, err)

	// "atg aaa tga" spells Met, Lys, stop; the space and X are dropped.
	filtered := n.SetSequence("atg aaaXtga")
	assert.Equal(t, 2, filtered)
	assert.Equal(t, "ATGAAATGA", n.Sequence())
	assert.Equal(t, "MK*", n.Protein())
}
