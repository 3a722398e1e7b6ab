package consensus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clonelab/lineage/consensus"
	"github.com/clonelab/lineage/distmat"
	"github.com/clonelab/lineage/mst"
)

// refSequences: root AAAA, then AAAT, AATT, TTTT at root distances 1, 2, 4.
var refSequences = []string{"AAAA", "AAAT", "AATT", "TTTT"}

// TestBuild_SingleSampleEqualsDirectMST is the degenerate-consensus
// property: one sample, no inference, reproduces the deterministic MST edge
// set with every weight exactly 1.
func TestBuild_SingleSampleEqualsDirectMST(t *testing.T) {
	res, err := consensus.Build(refSequences, 1, false)
	require.NoError(t, err)

	m, err := distmat.New(refSequences)
	require.NoError(t, err)
	direct, err := mst.Build(refSequences, m)
	require.NoError(t, err)

	require.Len(t, res.Edges, len(refSequences)-1)
	for _, e := range res.Edges {
		assert.Equal(t, direct[e.Child], e.Parent, "child %d", e.Child)
		assert.Equal(t, 1.0, e.Weight, "child %d", e.Child)
	}
}

// TestBuild_ReferenceChain pins the expected consensus topology and
// distances of the reference scenario.
func TestBuild_ReferenceChain(t *testing.T) {
	res, err := consensus.Build(refSequences, 1, false)
	require.NoError(t, err)

	want := []consensus.Edge{
		{Parent: 0, Child: 1, Distance: 1, Weight: 1},
		{Parent: 1, Child: 2, Distance: 1, Weight: 1},
		{Parent: 2, Child: 3, Distance: 2, Weight: 1},
	}
	assert.Equal(t, want, res.Edges)
	assert.Equal(t, uint32(4), res.BestParsimony)
	assert.Equal(t, uint32(4), res.ConsensusParsimony)
	assert.Equal(t, []uint32{4}, res.SampleParsimony)
}

// TestBuild_ManySamples checks weight bounds, diagnostic counts, and that
// every non-root sequence gets exactly one edge.
func TestBuild_ManySamples(t *testing.T) {
	const samples = 16
	res, err := consensus.Build(refSequences, samples, false,
		consensus.WithWorkers(3),
		consensus.WithSeed(21),
	)
	require.NoError(t, err)

	require.Len(t, res.Edges, len(refSequences)-1)
	require.Len(t, res.SampleParsimony, samples)

	seen := map[uint32]bool{}
	for _, e := range res.Edges {
		assert.Greater(t, e.Weight, 0.0)
		assert.LessOrEqual(t, e.Weight, 1.0)
		assert.False(t, seen[e.Child], "duplicate edge for child %d", e.Child)
		seen[e.Child] = true
	}

	// No sample can beat the deterministic tree.
	for _, s := range res.SampleParsimony {
		assert.GreaterOrEqual(t, s, res.BestParsimony)
	}
}

// TestBuild_WithInference runs the full pipeline with ancestral inference;
// edges still connect only real sequence indices.
func TestBuild_WithInference(t *testing.T) {
	res, err := consensus.Build(refSequences, 8, true,
		consensus.WithWorkers(2),
		consensus.WithSeed(4),
	)
	require.NoError(t, err)

	require.Len(t, res.Edges, len(refSequences)-1)
	for _, e := range res.Edges {
		assert.Less(t, int(e.Parent), len(refSequences))
		assert.Less(t, int(e.Child), len(refSequences))
	}
}

// TestBuild_Deterministic verifies base-seed reproducibility across the
// worker pool (merging is wave-ordered, not completion-ordered).
func TestBuild_Deterministic(t *testing.T) {
	a, err := consensus.Build(refSequences, 12, true, consensus.WithSeed(7), consensus.WithWorkers(4))
	require.NoError(t, err)
	b, err := consensus.Build(refSequences, 12, true, consensus.WithSeed(7), consensus.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, a.Edges, b.Edges)
	assert.Equal(t, a.SampleParsimony, b.SampleParsimony)
}

// TestBuild_Errors covers input validation.
func TestBuild_Errors(t *testing.T) {
	_, err := consensus.Build(refSequences, 0, false)
	assert.ErrorIs(t, err, consensus.ErrNoSamples)

	_, err = consensus.Build(nil, 1, false)
	assert.ErrorIs(t, err, distmat.ErrNoSequences)
}
