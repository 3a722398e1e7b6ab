// Package infer: greedy minimum-linkage topology and functional re-rooting.
package infer

import (
	"slices"
	"sort"

	"github.com/clonelab/lineage/distmat"
)

// join is one candidate pairing of two observed sequences.
type join struct {
	a, b uint32 // sequence indices, a > b
	d    uint32 // packed distance from the matrix entry (b, a)
}

// linkageTree builds the ancestor topology over the n = m.Rows() observed
// sequences as a parent vector.
//
// The returned slice has 2n-1 entries: ids [0, n) are the observed leaves,
// ids [n, 2n-2) are synthetic ancestors created by joins, and id 2n-2 is the
// root sentinel. parents[i] == i holds exactly for the root.
//
// Steps:
//  1. Enqueue every pair (i, j), i > j, with distance m[j][i]; sort the queue
//     by descending distance and consume from the back, so the globally
//     smallest remaining distance is handled first. The sort is stable: ties
//     resolve by queue construction order.
//  2. For each join, chase both endpoints' parent links to their current
//     non-root ancestors. If those coincide the join is discarded; otherwise
//     both ancestors are re-parented under the next fresh synthetic id.
//  3. Stop once the fresh id passes the root sentinel: the final join has
//     connected everything under the root.
//
// Complexity: O(n² log n) for the sort; the sweep is O(n²·α) with short
// parent chains in practice.
func linkageTree(m *distmat.Matrix) []uint32 {
	n := uint32(m.Rows())

	// 1. All pairwise joins, smallest distance at the back after sorting.
	q := make([]join, 0, n*(n-1)/2)
	for i := uint32(1); i < n; i++ {
		for j := uint32(0); j < i; j++ {
			q = append(q, join{a: i, b: j, d: m.At(int(j), int(i))})
		}
	}
	sort.SliceStable(q, func(x, y int) bool { return q[x].d > q[y].d })

	// The initial topology is a star: every node hangs off the root sentinel.
	rootID := 2*n - 2
	parents := make([]uint32, 2*n-1)
	for i := range parents {
		parents[i] = rootID
	}

	// 2.-3. Consume joins until the final one connects two subtrees under
	// the root sentinel itself.
	u := n
	for u != rootID+1 && len(q) > 0 {
		jn := q[len(q)-1]
		q = q[:len(q)-1]

		pa, pb := jn.a, jn.b
		for parents[pa] != rootID {
			pa = parents[pa]
		}
		for parents[pb] != rootID {
			pb = parents[pb]
		}

		// Already in the same subtree: this pair needs no new ancestor.
		if pa == pb {
			continue
		}

		parents[pa] = u
		parents[pb] = u
		u++
	}

	return parents
}

// Reroot returns a new parent vector in which leaf has become the root.
//
// Every link on the path from leaf up to the old root is reversed; all other
// links are untouched. The input is never mutated. Reroot must be invoked on
// a leaf: re-rooting an internal node would detach its subtree.
//
// Root convention: parents[i] == i marks the root, both on input and output.
//
// Complexity: O(len(parents)) for the leaf check, O(path) for the reversal.
func Reroot(parents []uint32, leaf uint32) ([]uint32, error) {
	for i, p := range parents {
		if p == leaf && uint32(i) != leaf {
			return nil, ErrNotLeaf
		}
	}

	out := slices.Clone(parents)

	// Reverse the root path: each ancestor now points at the node it was
	// reached from.
	v := leaf
	for parents[v] != v {
		p := parents[v]
		out[p] = v
		v = p
	}
	out[leaf] = leaf

	return out, nil
}
