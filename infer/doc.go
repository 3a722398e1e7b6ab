// Package infer reconstructs ancestral nucleotide sequences for a set of
// observed sequences, using a greedy neighbor-joining topology and the Fitch
// parsimony algorithm.
//
// What & Why
//
//   - Observed sequences are the leaves of an unknown lineage tree. The MST
//     builder benefits from also seeing plausible internal (ancestral)
//     sequences: real descendants can then attach to a reconstructed
//     intermediate instead of skipping generations.
//
//   - Topology: a greedy minimum-linkage procedure. All pairwise distances go
//     into a queue sorted by descending distance; joins are consumed from the
//     back (smallest first). Each join chases both endpoints to their current
//     non-root ancestors and, if those differ, places them under a fresh
//     synthetic ancestor. This is deliberately NOT canonical neighbor joining
//     — there is no matrix-reduction step — and is preserved as such.
//
//   - Re-rooting: Reroot returns a NEW parent mapping with every link on the
//     path from a chosen leaf to the old root reversed, so the leaf becomes
//     the root. Ancestors re-roots the linkage tree at leaf 0, the known or
//     assumed common ancestor. Re-rooting produces nodes with a single child;
//     the Fitch passes handle them by label copying.
//
//   - Labeling: the classic Fitch up-pass (children's mask intersection if
//     non-empty, else union) runs leaves-to-root; the root label is resolved
//     against the known ancestor sequence (any site whose up-pass mask
//     intersects the known base is fixed to it, others draw a random set
//     bit); the down-pass resolves remaining ambiguity root-to-leaves by
//     intersecting with the already-resolved parent label.
//
//   - Output: the decoded internal-node sequences, deduplicated against the
//     input and sorted. Scratch state (the arena, the bitmask labels) is torn
//     down before returning.
//
// Error Conditions
//
//   - ErrDimensionMismatch — the distance matrix does not cover the sequences.
//   - ErrBadTopology       — the linkage arena does not contain exactly one
//     parentless node; indicates an algorithm bug, treated as fatal.
//   - ErrNotLeaf           — Reroot invoked on an internal node.
//   - dna.ErrNonACGT       — a gap or invalid character in the input; gapped
//     inference is explicitly unsupported.
//
// Determinism
//
// Every ambiguity draw comes from one *rand.Rand created from the Seed option
// (seed 0 selects a fixed default), so identical inputs and seeds reproduce
// identical ancestors.
package infer
