package distmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clonelab/lineage/distmat"
	"github.com/clonelab/lineage/dna"
)

// refSequences is the engine's reference scenario: root AAAA with children at
// Hamming distances 1, 2 and 4.
var refSequences = []string{"AAAA", "AAAT", "AATT", "TTTT"}

// TestPack_RoundTrip pins the packed layout: high half child-parent, low half
// parent-root.
func TestPack_RoundTrip(t *testing.T) {
	v := distmat.Pack(3, 7)
	assert.Equal(t, uint32(3<<16|7), v)

	dcp, dpr := distmat.Unpack(v)
	assert.Equal(t, uint32(3), dcp)
	assert.Equal(t, uint32(7), dpr)
	assert.Equal(t, uint32(3), distmat.Distance(v))
}

// TestPack_LexicographicOrder verifies integer comparison of packed entries
// realizes the (child-parent, parent-root) tie-break.
func TestPack_LexicographicOrder(t *testing.T) {
	// Same child-parent distance: the parent closer to the root wins.
	assert.Less(t, distmat.Pack(2, 1), distmat.Pack(2, 5))
	// Child-parent distance dominates regardless of root distance.
	assert.Less(t, distmat.Pack(1, 9), distmat.Pack(2, 0))
}

// TestNew_PackedEntries checks every entry of the reference matrix against
// hand-computed distances.
func TestNew_PackedEntries(t *testing.T) {
	m, err := distmat.New(refSequences)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	// d(i,j) raw Hamming values.
	raw := [4][4]uint32{
		{0, 1, 2, 4},
		{1, 0, 1, 3},
		{2, 1, 0, 2},
		{4, 3, 2, 0},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := distmat.Pack(raw[i][j], raw[0][j])
			assert.Equal(t, want, m.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

// TestNew_NotSymmetric demonstrates that packing root distances breaks
// symmetry even though the raw distances are symmetric.
func TestNew_NotSymmetric(t *testing.T) {
	m, err := distmat.New(refSequences)
	require.NoError(t, err)

	// d(1,2) == d(2,1) == 1 raw, but the low halves differ:
	// column 2 carries root distance 2, column 1 carries root distance 1.
	assert.NotEqual(t, m.At(1, 2), m.At(2, 1))
	assert.Equal(t, distmat.Distance(m.At(1, 2)), distmat.Distance(m.At(2, 1)))
}

// TestNew_Errors covers the validation sentinels.
func TestNew_Errors(t *testing.T) {
	_, err := distmat.New(nil)
	assert.ErrorIs(t, err, distmat.ErrNoSequences)

	_, err = distmat.New([]string{"ACGT", "ACG"})
	assert.ErrorIs(t, err, dna.ErrLengthMismatch)
}

// TestNewFilled_And_Add covers the counter-grid reuse by the consensus stage.
func TestNewFilled_And_Add(t *testing.T) {
	m := distmat.NewFilled(3, 10)
	assert.Equal(t, uint32(10), m.At(2, 1))

	got := m.Add(2, 1, ^uint32(0)) // decrement by one, two's complement
	assert.Equal(t, uint32(9), got)
	assert.Equal(t, uint32(9), m.At(2, 1))
}
