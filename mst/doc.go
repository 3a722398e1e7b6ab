// Package mst builds spanning trees over sequences with a randomized,
// ancestor-aware Prim-style sweep.
//
// What & Why
//
//   - The tree grows from index 0 (the root sequence). For every node not yet
//     attached, the sweep maintains the best known (distance, candidate
//     parent) pair; each step attaches the globally cheapest candidate and
//     relaxes the rest against it. This is Prim's algorithm over a dense,
//     implicitly complete graph, so a selection sweep beats a heap: candidate
//     distances change as ancestors join, and the dense O(n²) relaxation is
//     already optimal for complete graphs.
//
//   - Distances are the packed (child-parent, parent-root) pairs of the
//     distmat package, compared lexicographically. The low half breaks raw
//     distance ties toward parents nearer the root, approximating the
//     breadth-first shape of affinity maturation.
//
//   - When a candidate pair involves an index beyond the matrix (an inferred
//     ancestor appended by the infer package), the packed distance is
//     computed on the fly from raw Hamming distances.
//
//   - WithShuffle randomizes the candidate order behind the root before the
//     sweep. Distances are unaffected; only tie resolution and the realized
//     topology change. This is the sole source of per-sample variability the
//     consensus stage feeds on.
//
// Output is a parent vector: tree[i] is the parent index of node i, with the
// root's own entry fixed at 0 and unused.
//
// Error Conditions
//
//   - ErrNoMatrix          — nil distance matrix.
//   - dna.ErrLengthMismatch — on-the-fly distance over unequal sequences.
//   - errors from infer.Ancestors when WithAncestors is enabled.
package mst
