// Package markov estimates a nucleotide substitution model from a lineage
// tree.
//
// Given the input sequences and the consensus edge list over them, Infer
// counts, per tree edge and per aligned site, the transition from the
// parent's base to the child's base. Counts normalize into a 4×4
// COLUMN-stochastic matrix over A, C, G, T: column j holds the probabilities
// that base j stays put or mutates into each other base, so each column sums
// to one. A base never observed as a parent gets an identity column (it
// deterministically stays itself) instead of a divide-by-zero.
//
// The model does not distinguish coding from silent mutations, and gapped
// sequences are not supported: any character outside ACGT on an edge
// endpoint is a domain error.
package markov
