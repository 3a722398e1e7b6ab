// Package dna provides the nucleotide-sequence primitives every other stage
// of the engine builds on: cleaning raw input into ACGT form, codon
// translation, Hamming distances, and the 4-bit presence masks used by
// parsimony-based ancestral reconstruction.
//
// What & Why
//
//   - Sequences are plain strings over {A, C, G, T}, optionally containing
//     '-' gaps. Gaps are tolerated by Clean and Translate (they are skipped),
//     but rejected wherever a concrete base is required (infer.Ancestors,
//     markov.Infer).
//
//   - Hamming(a, b) counts positionwise mismatches of two equal-length
//     sequences. It is the only distance the engine uses: trees are built
//     over ungapped, aligned sequences, so edit-distance generality is not
//     needed (and explicitly out of scope).
//
//   - Mask packs the presence of each base into one bit of a nibble
//     (A=1, C=2, G=4, T=8). The Fitch algorithm unions and intersects these
//     masks to track ambiguous ancestral states; RandomBit resolves an
//     ambiguous mask to a single base.
//
// Error Conditions
//
//   - ErrLengthMismatch — Hamming over sequences of different lengths.
//   - ErrNonACGT       — a character outside {A,C,G,T} (or outside
//     {A,C,G,T,-} where gaps are allowed) reached a strict operation.
//
// Determinism
//
// RandomBit and DecodeSeq draw from a caller-supplied *rand.Rand, never from
// the global source, so every consumer controls its own seed.
package dna
