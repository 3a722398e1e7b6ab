// Package distmat: square uint32 matrices with dual-packed Hamming entries.
package distmat

import (
	"errors"

	"github.com/clonelab/lineage/dna"
)

// ErrNoSequences indicates New was called with an empty sequence list.
var ErrNoSequences = errors.New("distmat: no sequences")

// Matrix is a dense square matrix of uint32 entries in row-major order.
// It is read-only for the lifetime of a tree build once constructed.
type Matrix struct {
	n    int
	data []uint32
}

// NewFilled returns an n×n Matrix with every entry set to fill.
// Complexity: O(n²).
func NewFilled(n int, fill uint32) *Matrix {
	m := &Matrix{n: n, data: make([]uint32, n*n)}
	if fill != 0 {
		for i := range m.data {
			m.data[i] = fill
		}
	}

	return m
}

// Rows returns the number of rows (== columns). Complexity: O(1).
func (m *Matrix) Rows() int { return m.n }

// At returns entry (i, j). Complexity: O(1).
func (m *Matrix) At(i, j int) uint32 { return m.data[i*m.n+j] }

// Set stores v at entry (i, j). Complexity: O(1).
func (m *Matrix) Set(i, j int, v uint32) { m.data[i*m.n+j] = v }

// Add adds delta to entry (i, j) and returns the new value. Complexity: O(1).
func (m *Matrix) Add(i, j int, delta uint32) uint32 {
	m.data[i*m.n+j] += delta
	return m.data[i*m.n+j]
}

// Pack combines d(child, parent) and d(parent, root) into one packed entry:
// the high 16 bits carry the child-parent distance, the low 16 bits the
// parent-root distance. Integer order over packed values is lexicographic
// order over the (child-parent, parent-root) pair.
func Pack(dChildParent, dParentRoot uint32) uint32 {
	return dChildParent<<16 | dParentRoot&0xFFFF
}

// Unpack splits a packed entry back into its two 16-bit distances.
func Unpack(v uint32) (dChildParent, dParentRoot uint32) {
	return v >> 16, v & 0xFFFF
}

// Distance returns only the child-parent half of a packed entry.
func Distance(v uint32) uint32 { return v >> 16 }

// New builds the packed distance matrix for sequences, rooted at
// sequences[0].
//
// Steps:
//  1. Validate: at least one sequence; all sequences equal length
//     (dna.Hamming reports dna.ErrLengthMismatch otherwise).
//  2. Compute raw symmetric Hamming distances over the lower triangle and
//     mirror them to the upper.
//  3. Snapshot row 0 (distance of every sequence to the root), then rewrite
//     each entry (i, j) as Pack(d(i,j), d(j,root)) — this is the step that
//     breaks symmetry.
//
// Complexity: O(n²·L) time for n sequences of length L, O(n²) memory.
func New(sequences []string) (*Matrix, error) {
	// 1. Validate input presence.
	if len(sequences) == 0 {
		return nil, ErrNoSequences
	}

	n := len(sequences)
	m := NewFilled(n, 0)

	// 2. Raw Hamming distances: lower triangle once, mirrored up.
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			d, err := dna.Hamming(sequences[i], sequences[j])
			if err != nil {
				return nil, err
			}
			m.Set(i, j, d)
			m.Set(j, i, d)
		}
	}

	// 3. Pack root distances into the low halves. Row 0 holds d(root, j) so
	//    it must be captured before any entry is rewritten.
	rootDist := make([]uint32, n)
	for j := 0; j < n; j++ {
		rootDist[j] = m.At(0, j)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, Pack(m.At(i, j), rootDist[j]))
		}
	}

	return m, nil
}
