// Package consensus aggregates many randomized spanning-tree samples into a
// single weighted consensus tree.
//
// What & Why
//
//   - A single MST over noisy sequence data commits hard to one resolution of
//     every tie and near-tie. Sampling many shuffled builds and keeping the
//     edges that recur yields a tree annotated with how often each edge was
//     realized — a confidence weight in [0, 1].
//
//   - Frequency accounting runs through a counter matrix initialized to the
//     maximum representable count: each observed (child, realized parent)
//     edge DECREMENTS its entry, so more frequent edges hold smaller values
//     and the counter matrix doubles as a distance matrix for the final,
//     deterministic MST pass (lower count == higher frequency == cheaper).
//
//   - Samples built with inferred ancestors are contracted back to real
//     nodes before accounting: a child whose realized parent is synthetic is
//     re-parented onto its nearest real ancestor.
//
//   - For nSamples == 1 the counter matrix degenerates to a 0/1 indicator of
//     the single sample, so the consensus tree IS that sample and every edge
//     weight is 1.
//
// Concurrency
//
// Samples are embarrassingly parallel: each worker reads the shared immutable
// distance matrix and produces an independent tree. Workers run in waves
// bounded by the pool size (hardware concurrency, minimum 2); the counter
// matrix is only touched on the coordinating goroutine after the whole wave
// has joined — join-then-merge, no locks, no tearing. A failing sample aborts
// the entire build; there is no partial-result mode.
//
// Output
//
// Build returns the consensus Edge list plus parsimony diagnostics: the best
// achievable score (unshuffled, uninferred MST), each sample's score, and the
// consensus tree's score. Scores are informational only.
package consensus
