// Package lineage clusters related nucleotide sequences into a phylogenetic
// lineage tree and lays the tree out with a force-directed physics simulation.
//
// 🧬 What is lineage?
//
//	A pure-Go computational engine that brings together:
//		• Sequence primitives: validation, translation, Hamming distances
//		• Packed distance matrices: child↔parent and parent↔root in one word
//		• Ancestral inference: greedy neighbor joining + the Fitch algorithm
//		• Randomized MST construction with root-affine lexicographic tie-break
//		• Consensus aggregation: many shuffled samples, one weighted tree
//		• Markov substitution models over A, C, G, T
//		• Tree model: consolidation, centroids, inferred-leaf pruning
//		• Layout: a parallel force simulator producing 2D node positions
//
// ✨ Why choose lineage?
//
//   - Deterministic – every randomized stage accepts an explicit seed
//   - Race-free parallelism – workers own their buffers, one reduction step
//   - Pure Go – no cgo, no rendering, no file formats; collaborators consume
//     the Edge list and Network state through plain APIs
//
// Under the hood, everything is organized into focused packages:
//
//	dna/       — nucleotide cleaning, translation, Hamming, 4-bit masks
//	distmat/   — packed pairwise distance matrices
//	infer/     — neighbor-joining topology + Fitch ancestral reconstruction
//	mst/       — randomized ancestor-aware spanning-tree builder
//	consensus/ — multi-sample edge-frequency consensus trees
//	markov/    — column-stochastic nucleotide substitution matrices
//	network/   — tree model, consolidation, centroids & force layout
//
// Data flows leaves-first:
//
//	sequences → distmat → (infer) → mst samples → consensus → network → layout
//
// Parsing (FASTA and friends), rendering, and interactive input are external
// collaborators: sequences come in as equal-length, case-folded ACGT strings
// with the root at index 0, and the consensus Edge list goes out.
//
//	go get github.com/clonelab/lineage
package lineage
