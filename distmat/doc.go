// Package distmat builds the packed pairwise distance matrices driving tree
// construction.
//
// What & Why
//
//   - Entry (c, p) of a distance matrix packs TWO 16-bit Hamming distances
//     into one uint32: the high half holds d(c, p), the low half holds
//     d(p, root). Comparing packed entries as plain integers therefore
//     compares (child-parent distance, parent-root distance) pairs
//     lexicographically — ties on raw distance break toward parents that sit
//     closer to the root, which biases spanning trees toward the shallow,
//     breadth-first shape of an affinity-maturation lineage.
//
//   - Because the low half depends on the COLUMN's root distance, a packed
//     matrix is deliberately not symmetric, even though the underlying raw
//     Hamming distances are (they are computed once over the lower triangle
//     and mirrored before packing).
//
//   - The root is always sequences[0]. The diagonal is never consulted by any
//     consumer: a node is never its own candidate parent.
//
// Matrix is also reused unpacked by the consensus stage, as a plain square
// counter grid (see consensus.Build), so its accessors make no assumptions
// about entry encoding.
//
// Error Conditions
//
//   - ErrNoSequences       — New called with an empty input.
//   - dna.ErrLengthMismatch — inputs of unequal length.
package distmat
